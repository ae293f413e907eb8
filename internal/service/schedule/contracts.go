package schedule

import (
	"context"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetAllEntries(ctx context.Context) ([]*domain.ScheduleEntry, error)
	GetBlockedDates(ctx context.Context) ([]*domain.BlockedDate, error)
	AddBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error)
	RemoveBlockedDate(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
