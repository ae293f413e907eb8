package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
)

const (
	msgTooManyRequests = "Слишком много запросов, попробуйте позже"
	msgTooManyLogins   = "Слишком много попыток входа, попробуйте позже"
)

// RateLimit общий лимит запросов с одного IP за окно
// Ошибка хранилища счетчиков не блокирует запрос
func RateLimit(limiter Limiter, limit int64, name string, m Metrics, log Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count, err := limiter.Hit(r.Context(), name+":"+ClientIP(r))
			if err != nil {
				log.Warn("ratelimit: %s limiter unavailable, letting request through: %v", name, err)
				next.ServeHTTP(w, r)
				return
			}
			if count > limit {
				m.IncRateLimited(name)
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LoginRateLimit лимит неудачных попыток входа с одного IP
// Попытка учитывается до проверки пароля, успешный вход ее откатывает
func LoginRateLimit(limiter Limiter, limit int64, m Metrics, log Logger) Middleware {
	const name = "login"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := name + ":" + ClientIP(r)

			count, err := limiter.Hit(r.Context(), key)
			if err != nil {
				log.Warn("ratelimit: login limiter unavailable, letting request through: %v", err)
				next.ServeHTTP(w, r)
				return
			}
			if count > limit {
				m.IncRateLimited(name)
				handlers.RespondTooManyRequests(w, msgTooManyLogins)
				return
			}

			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)

			if sw.Status() < http.StatusBadRequest {
				if err := limiter.Undo(r.Context(), key); err != nil {
					log.Warn("ratelimit: failed to release successful login: %v", err)
				}
			}
		})
	}
}
