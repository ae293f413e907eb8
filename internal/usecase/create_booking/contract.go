package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/service/notifications"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveBySlot(ctx context.Context, date time.Time, t types.TimeString) (*domain.Booking, error)
}

// Availability проверка часа по расписанию
type Availability interface {
	IsScheduled(ctx context.Context, date time.Time, t types.TimeString) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier фоновая рассылка уведомлений о записи
type Notifier interface {
	Dispatch(booking *domain.Booking, wait time.Duration) notifications.Result
}

// SlotLocker блокировка слота внутри процесса
type SlotLocker interface {
	Lock(key string) (unlock func())
}

// Metrics счетчики приема записей
type Metrics interface {
	IncBookingsAdmitted()
	IncSlotConflicts()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
