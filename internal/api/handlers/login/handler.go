package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/service/auth"
	"github.com/m04kA/SMC-ConsultationService/pkg/validation"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgCredentialsInvalid = "Email and password required"
	msgInvalidCredentials = "Invalid credentials"
	msgLoginFailed        = "Login failed"
)

type Handler struct {
	auth     AuthService
	sessions SessionStore
	cookie   handlers.SessionCookie
	validate *validation.Validator
	logger   Logger
}

func NewHandler(auth AuthService, sessions SessionStore, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		auth:     auth,
		sessions: sessions,
		cookie:   cookie,
		validate: validation.New(),
		logger:   logger,
	}
}

// Handle POST /api/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		handlers.RespondValidationError(w, msgCredentialsInvalid, validation.Fields(err))
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Login failed: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgLoginFailed)
		}
		return
	}

	sess, err := h.sessions.Create(r.Context(), user.ID, user.Email)
	if err != nil {
		h.logger.Error("POST /auth/login - Failed to create session for admin id=%d: %v", user.ID, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgLoginFailed)
		return
	}

	h.cookie.Set(w, sess.ID)
	h.logger.Info("POST /auth/login - Admin logged in: admin_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		User:    User{ID: user.ID, Email: user.Email},
	})
}
