package settings

import (
	"context"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetAll(ctx context.Context) ([]*domain.Setting, error)
	Upsert(ctx context.Context, key, value string) (*domain.Setting, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
