package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// Config параметры бота для уведомлений администраторам
type Config struct {
	BotToken string
	ChatID   string
}

// Configured заданы ли токен и чат
func (c Config) Configured() bool {
	return c.BotToken != "" && c.ChatID != ""
}

// Client отправляет уведомления о новых записях в чат администраторов
type Client struct {
	bot    *bot.Bot
	chatID string
	log    Logger
}

// NewClient создает клиента; без токена или чата клиент выключен, но валиден
func NewClient(cfg Config, log Logger, opts ...bot.Option) (*Client, error) {
	c := &Client{chatID: cfg.ChatID, log: log}
	if !cfg.Configured() {
		return c, nil
	}

	opts = append([]bot.Option{bot.WithSkipGetMe()}, opts...)
	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}
	c.bot = b

	return c, nil
}

// Name название канала
func (c *Client) Name() string {
	return "telegram"
}

// Enabled настроен ли канал
func (c *Client) Enabled() bool {
	return c.bot != nil
}

// Send отправляет сообщение о записи в чат
func (c *Client) Send(ctx context.Context, booking *domain.Booking) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}

	disabled := true
	_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:             c.chatID,
		Text:               FormatBookingMessage(booking),
		ParseMode:          models.ParseModeHTML,
		LinkPreviewOptions: &models.LinkPreviewOptions{IsDisabled: &disabled},
	})
	if err != nil {
		return fmt.Errorf("%w: booking_id=%d: %w", ErrSend, booking.ID, err)
	}

	c.log.Info("Telegram: notification sent for booking_id=%d", booking.ID)
	return nil
}
