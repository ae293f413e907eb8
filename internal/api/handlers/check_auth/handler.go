package check_auth

import (
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/infra/session"
)

// User администратор текущей сессии
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// CheckAuthResponse HTTP response model
type CheckAuthResponse struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

// Handle GET /api/auth/check
func Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		handlers.RespondJSON(w, http.StatusOK, CheckAuthResponse{Authenticated: false})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CheckAuthResponse{
		Authenticated: true,
		User:          &User{ID: sess.UserID, Email: sess.Email},
	})
}
