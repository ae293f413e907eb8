package add_blocked_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedule"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgDateRequired       = "Date required, expected YYYY-MM-DD"
	msgAlreadyBlocked     = "Date already blocked"
	msgFailed             = "Failed to add blocked date"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/schedule/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	blocked, err := h.service.AddBlockedDate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgDateRequired)

		case errors.Is(err, schedule.ErrDateAlreadyBlocked):
			handlers.RespondConflict(w, msgAlreadyBlocked)

		default:
			h.logger.Error("POST /schedule/blocked-dates - Failed to add blocked date: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFailed)
		}
		return
	}

	h.logger.Info("POST /schedule/blocked-dates - Date blocked: date=%s, id=%d", blocked.Date, blocked.ID)
	handlers.RespondJSON(w, http.StatusOK, AddBlockedDateResponse{Success: true, BlockedDate: blocked})
}
