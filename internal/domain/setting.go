package domain

import "time"

// Известные ключи настроек записи
const (
	SettingSlotDurationMinutes = "slot_duration_minutes"
	SettingBookingHorizonDays  = "booking_horizon_days"
)

// Setting пара ключ-значение конфигурации записи
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
