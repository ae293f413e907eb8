package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/logger"
)

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:              7,
		Date:            time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Time:            "10:00",
		FullName:        "Анна &amp; Co",
		Email:           "anna@example.com",
		Phone:           "+79990001122",
		Category:        domain.CategoryParent,
		Messenger:       domain.MessengerTelegram,
		MessengerHandle: "@anna",
		Questions:       "Первый\nВторой",
	}
}

func TestClient_Send(t *testing.T) {
	var (
		mu       sync.Mutex
		received []Email
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))

		var e Email
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&e))
		mu.Lock()
		received = append(received, e)
		mu.Unlock()

		_, _ = w.Write([]byte(`{"id":"msg_1"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{
		APIKey:     "re_test",
		BaseURL:    srv.URL + "/",
		From:       "Консультации <noreply@example.com>",
		AdminEmail: "admin@example.com",
		Timeout:    time.Second,
	}, logger.NewNop())

	require.NoError(t, c.Send(context.Background(), testBooking()))
	require.Len(t, received, 2)

	byRecipient := map[string]Email{}
	for _, e := range received {
		byRecipient[e.To[0]] = e
	}

	client := byRecipient["anna@example.com"]
	assert.Equal(t, "Подтверждение записи на консультацию", client.Subject)
	assert.Contains(t, client.HTML, "<strong>Анна &amp; Co</strong>")
	assert.Contains(t, client.HTML, "10.06.2025")

	admin := byRecipient["admin@example.com"]
	assert.Equal(t, "🔔 Новая запись: Анна &amp; Co (10.06.2025 10:00)", admin.Subject)
	assert.Contains(t, admin.HTML, "Telegram:</span> @anna")
	assert.Contains(t, admin.HTML, "Первый<br>Второй")
	assert.Contains(t, admin.HTML, "👪 Родитель")
}

func TestClient_SendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "bad", BaseURL: srv.URL, AdminEmail: "admin@example.com", Timeout: time.Second}, logger.NewNop())

	err := c.Send(context.Background(), testBooking())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(Config{APIKey: "re_test"}, logger.NewNop())

	assert.False(t, c.Enabled())
	assert.ErrorIs(t, c.Send(context.Background(), testBooking()), ErrNotConfigured)
}

func TestAdminEmail_OmitsEmptyOptionalBlocks(t *testing.T) {
	c := NewClient(Config{AdminEmail: "admin@example.com"}, logger.NewNop())
	b := testBooking()
	b.Messenger = domain.MessengerNone
	b.MessengerHandle = ""
	b.Questions = ""

	e, err := c.adminEmail(b)
	require.NoError(t, err)
	assert.NotContains(t, e.HTML, "questions-box\">")
	assert.NotContains(t, e.HTML, "Telegram")
}
