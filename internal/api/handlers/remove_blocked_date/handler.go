package remove_blocked_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedule"
)

const (
	msgInvalidID = "Invalid blocked date ID"
	msgNotFound  = "Blocked date not found"
	msgFailed    = "Failed to remove blocked date"
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

type removeResponse struct {
	Success bool `json:"success"`
}

// Handle DELETE /api/schedule/blocked-dates/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /schedule/blocked-dates/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.RemoveBlockedDate(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockedDateNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /schedule/blocked-dates/{id} - Failed to remove: id=%d, error=%v", id, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFailed)
		}
		return
	}

	h.logger.Info("DELETE /schedule/blocked-dates/{id} - Blocked date removed: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, removeResponse{Success: true})
}
