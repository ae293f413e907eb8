package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore сессии в Redis: ключ session:<id>, JSON-значение с TTL
type RedisStore struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

// NewRedisStore создает хранилище с временем жизни сессии ttl
func NewRedisStore(rdb redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (r *RedisStore) Create(ctx context.Context, userID int64, email string) (*Session, error) {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(r.ttl),
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal session: %w", ErrStore, err)
	}

	if err := r.rdb.Set(ctx, keyPrefix+s.ID, payload, r.ttl).Err(); err != nil {
		return nil, fmt.Errorf("%w: save session: %w", ErrStore, err)
	}

	return s, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := r.rdb.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load session: %w", ErrStore, err)
	}

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("%w: decode session: %w", ErrStore, err)
	}
	if s.Expired(time.Now()) {
		return nil, ErrSessionNotFound
	}

	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: delete session: %w", ErrStore, err)
	}
	return nil
}
