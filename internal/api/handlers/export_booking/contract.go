package export_booking

import "context"

type BookingService interface {
	ExportOne(ctx context.Context, id int64) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
