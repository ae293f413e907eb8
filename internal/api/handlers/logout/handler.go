package logout

import (
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/infra/session"
)

const msgLogoutFailed = "Logout failed"

type Handler struct {
	sessions SessionStore
	cookie   handlers.SessionCookie
	logger   Logger
}

func NewHandler(sessions SessionStore, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		cookie:   cookie,
		logger:   logger,
	}
}

type logoutResponse struct {
	Success bool `json:"success"`
}

// Handle POST /api/auth/logout
// Без сессии ответ тоже успешный
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if sess, ok := session.FromContext(r.Context()); ok {
		if err := h.sessions.Delete(r.Context(), sess.ID); err != nil {
			h.logger.Error("POST /auth/logout - Failed to destroy session: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgLogoutFailed)
			return
		}
		h.logger.Info("POST /auth/logout - Admin logged out: admin_id=%d", sess.UserID)
	}

	h.cookie.Clear(w)
	handlers.RespondJSON(w, http.StatusOK, logoutResponse{Success: true})
}
