package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// ScheduleRepository интерфейс хранилища расписания
type ScheduleRepository interface {
	IsDateBlocked(ctx context.Context, date time.Time) (bool, error)
	GetEntriesForDayOfWeek(ctx context.Context, dayOfWeek int) ([]*domain.ScheduleEntry, error)
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	// GetOccupiedTimes времена активных (не отмененных) записей на дату
	GetOccupiedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
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
