package export_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers/list_bookings"
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings"
)

const (
	msgInvalidFilter = "Invalid filter parameters"
	exportFilename   = "consultations.ics"
)

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

// Handle GET /api/bookings/export.ics
// Фильтры те же, что у списка записей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	calendar, err := h.service.ExportAll(r.Context(), list_bookings.FromQuery(r.URL.Query()))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings/export.ics - Failed to export bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondCalendar(w, exportFilename, calendar)
}
