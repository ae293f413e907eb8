package list_schedules

import (
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
)

const msgFailed = "Failed to get schedules"

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

// Handle GET /api/schedule/all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.AllSchedules(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/all - Failed to get schedules: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
