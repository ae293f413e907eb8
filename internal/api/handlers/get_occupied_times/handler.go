package get_occupied_times

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

const msgInvalidDate = "Invalid date format, expected YYYY-MM-DD"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings/occupied/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]
	date, err := types.ParseDate(raw)
	if err != nil {
		h.logger.Warn("GET /bookings/occupied/{date} - Invalid date: %q", raw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.OccupiedTimes(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /bookings/occupied/{date} - Failed to get occupied times: date=%s, error=%v", raw, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
