package get_occupied_times

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings/models"
)

type BookingService interface {
	OccupiedTimes(ctx context.Context, date time.Time) (*models.OccupiedTimesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
