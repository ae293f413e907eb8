package login

import (
	"context"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/infra/session"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.AdminUser, error)
}

type SessionStore interface {
	Create(ctx context.Context, userID int64, email string) (*session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
