package middleware

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/infra/session"
)

const msgUnauthorized = "Unauthorized"

// Sessions находит сессию по cookie и кладет ее в контекст запроса
// Запрос без сессии проходит дальше анонимным
func Sessions(store SessionStore, cookieName string, log Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := store.Get(r.Context(), cookie.Value)
			switch {
			case err == nil:
				r = r.WithContext(session.WithSession(r.Context(), sess))
			case errors.Is(err, session.ErrSessionNotFound):
				log.Debug("session: unknown or expired session cookie")
			default:
				log.Error("session: failed to load session: %v", err)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth пропускает только запросы с сессией администратора
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.FromContext(r.Context()); !ok {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
