package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxFullNameLength        = 200
	MaxEmailLength           = 254
	MaxPhoneLength           = 32
	MaxMessengerHandleLength = 100
	MaxQuestionsLength       = 2000
	MaxBlockReasonLength     = 500
	MaxSettingValueLength    = 1000
)

// SlotDuration длительность консультации: слоты часовые
const SlotDurationMinutes = 60

// BookingStatuses все допустимые статусы
var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// ParseBookingStatus проверяет строковый статус
func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, st := range BookingStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}
