package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/infra/session"
)

// Middleware обертка над http.Handler; совместима с mux.Router.Use
type Middleware func(http.Handler) http.Handler

// SessionStore чтение серверных сессий
type SessionStore interface {
	Get(ctx context.Context, id string) (*session.Session, error)
}

// Limiter счетчик запросов в окне
type Limiter interface {
	Hit(ctx context.Context, key string) (int64, error)
	Undo(ctx context.Context, key string) error
}

// Metrics метрики HTTP и лимитера
type Metrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
	IncRateLimited(limiter string)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
