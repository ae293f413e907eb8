package session

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrSessionNotFound сессия отсутствует или истекла
	ErrSessionNotFound = errors.New("session: not found")

	// ErrStore ошибка хранилища сессий
	ErrStore = errors.New("session: store error")
)

// Session серверная сессия администратора
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired истекла ли сессия к моменту now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Store хранилище сессий
type Store interface {
	Create(ctx context.Context, userID int64, email string) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type ctxKey struct{}

// WithSession кладет сессию в контекст запроса
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext достает сессию из контекста запроса
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
