package bookings

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/ics"
	"github.com/m04kA/SMC-ConsultationService/pkg/sanitize"
)

const (
	calendarProdID = "-//Consultation Booking//RU"
	uidDomain      = "consultation.local"
)

// toEvent переводит запись в VEVENT длительностью один слот
// Текстовые поля хранятся экранированными, в календарь идет исходный текст
func toEvent(b *domain.Booking, stamp time.Time) ics.Event {
	start := b.StartsAt()

	return ics.Event{
		UID:         fmt.Sprintf("booking-%d@%s", b.ID, uidDomain),
		Stamp:       stamp,
		Start:       start,
		End:         start.Add(domain.SlotDurationMinutes * time.Minute),
		Summary:     "Консультация - " + sanitize.Unescape(b.FullName),
		Description: fmt.Sprintf("%s\nEmail: %s", b.Category.Title(), b.Email),
		Status:      eventStatus(b.Status),
	}
}

func eventStatus(s domain.BookingStatus) string {
	switch s {
	case domain.StatusConfirmed:
		return "CONFIRMED"
	case domain.StatusCancelled:
		return "CANCELLED"
	default:
		return "TENTATIVE"
	}
}

func renderCalendar(bookings []*domain.Booking, stamp time.Time) string {
	cal := ics.Calendar{
		ProdID: calendarProdID,
		Events: make([]ics.Event, 0, len(bookings)),
	}
	for _, b := range bookings {
		cal.Events = append(cal.Events, toEvent(b, stamp))
	}
	return cal.Render()
}
