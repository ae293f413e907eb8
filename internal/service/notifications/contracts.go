package notifications

import (
	"context"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// Channel канал доставки уведомлений (почта, чат)
type Channel interface {
	Name() string
	Enabled() bool
	Send(ctx context.Context, booking *domain.Booking) error
}

// Metrics счетчики исходов доставки
type Metrics interface {
	IncNotification(channel, outcome string)
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
