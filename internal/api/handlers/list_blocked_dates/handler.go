package list_blocked_dates

import (
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
)

const msgFailed = "Failed to get blocked dates"

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

// Handle GET /api/schedule/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.BlockedDates(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/blocked-dates - Failed to get blocked dates: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
