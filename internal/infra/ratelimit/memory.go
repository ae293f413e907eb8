package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter счетчики фиксированного окна в памяти процесса
type MemoryLimiter struct {
	window time.Duration
	now    func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
	lastGC   time.Time
}

type visitor struct {
	count     int64
	resetTime time.Time
}

// NewMemoryLimiter создает лимитер с окном window
func NewMemoryLimiter(window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		window:   window,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

// Hit увеличивает счетчик ключа и возвращает новое значение
func (l *MemoryLimiter) Hit(_ context.Context, key string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.gc(now)

	v := l.visitors[key]
	if v == nil || !now.Before(v.resetTime) {
		l.visitors[key] = &visitor{count: 1, resetTime: now.Add(l.window)}
		return 1, nil
	}

	v.count++
	return v.count, nil
}

// Undo откатывает один Hit, пока окно ключа не истекло
func (l *MemoryLimiter) Undo(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	v := l.visitors[key]
	if v == nil || !l.now().Before(v.resetTime) || v.count == 0 {
		return nil
	}
	v.count--
	return nil
}

// gc раз в окно выбрасывает истекшие счетчики
func (l *MemoryLimiter) gc(now time.Time) {
	if now.Sub(l.lastGC) < l.window {
		return
	}
	for key, v := range l.visitors {
		if !now.Before(v.resetTime) {
			delete(l.visitors, key)
		}
	}
	l.lastGC = now
}
