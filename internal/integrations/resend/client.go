package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// Config параметры почтового канала
type Config struct {
	APIKey     string
	BaseURL    string
	From       string
	AdminEmail string
	Timeout    time.Duration
}

// Client отправляет письма о записи через Resend HTTP API
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Resend
func NewClient(cfg Config, log Logger) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// Name название канала
func (c *Client) Name() string {
	return "email"
}

// Enabled настроен ли канал
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != "" && c.cfg.AdminEmail != ""
}

// Send отправляет подтверждение посетителю и уведомление администратору параллельно
// Ошибка любого из писем делает отправку неуспешной
func (c *Client) Send(ctx context.Context, booking *domain.Booking) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}

	clientEmail, err := c.clientEmail(booking)
	if err != nil {
		return err
	}
	adminEmail, err := c.adminEmail(booking)
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error { return c.send(ctx, clientEmail) })
	g.Go(func() error { return c.send(ctx, adminEmail) })

	return g.Wait()
}

func (c *Client) send(ctx context.Context, email *Email) error {
	body, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal email: %w", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %w", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", ErrInvalidResponse, err)
	}

	c.log.Info("Resend: email sent to=%s id=%s", strings.Join(email.To, ","), result.ID)
	return nil
}
