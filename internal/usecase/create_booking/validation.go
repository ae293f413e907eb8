package create_booking

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/sanitize"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
	"github.com/m04kA/SMC-ConsultationService/pkg/validation"
)

var validate = validation.New()

// normalize обрезает пробелы; пустой мессенджер означает "none"
func normalize(req *Request) {
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.Category = strings.TrimSpace(req.Category)
	req.Messenger = strings.TrimSpace(req.Messenger)
	req.MessengerHandle = strings.TrimSpace(req.MessengerHandle)
	req.Questions = strings.TrimSpace(req.Questions)

	if req.Messenger == "" {
		req.Messenger = string(domain.MessengerNone)
	}
}

// validateRequest проверяет поля и собирает все нарушения сразу
func validateRequest(req *Request) error {
	fields := validation.Fields(validate.Struct(req))
	if fields == nil {
		fields = make(map[string]string)
	}

	if req.Messenger != string(domain.MessengerNone) && req.MessengerHandle == "" {
		if _, ok := fields["messengerHandle"]; !ok {
			fields["messengerHandle"] = "required when messenger is set"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// toBooking собирает запись из проверенной заявки, экранируя свободный текст
func toBooking(req *Request, date time.Time) *domain.Booking {
	booking := &domain.Booking{
		Date:      date,
		Time:      types.TimeString(req.Time),
		FullName:  sanitize.Text(req.FullName),
		Email:     req.Email,
		Phone:     req.Phone,
		Category:  domain.Category(req.Category),
		Messenger: domain.Messenger(req.Messenger),
		Questions: sanitize.Text(req.Questions),
		Status:    domain.StatusPending,
	}
	if booking.Messenger != domain.MessengerNone {
		booking.MessengerHandle = sanitize.Text(req.MessengerHandle)
	}
	return booking
}
