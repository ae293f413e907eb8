package domain

import (
	"time"

	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// BookingStatus статус записи на консультацию
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Category категория посетителя
type Category string

const (
	CategoryApplicant Category = "applicant"
	CategoryParent    Category = "parent"
)

// Messenger предпочитаемый мессенджер для связи
type Messenger string

const (
	MessengerNone     Messenger = "none"
	MessengerTelegram Messenger = "telegram"
	MessengerWhatsApp Messenger = "whatsapp"
	MessengerViber    Messenger = "viber"
)

// Booking запись на консультацию
// Инвариант: на пару (Date, Time) существует не более одной записи со статусом != cancelled
type Booking struct {
	ID              int64
	Date            time.Time
	Time            types.TimeString
	FullName        string
	Email           string
	Phone           string
	Category        Category
	Messenger       Messenger
	MessengerHandle string
	Questions       string
	Status          BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // запись снята администратором, хранится для истории
}

// IsActive занимает ли запись слот
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsDeleted снята ли запись администратором
func (b *Booking) IsDeleted() bool {
	return b.DeletedAt != nil
}

// StartsAt момент начала консультации
func (b *Booking) StartsAt() time.Time {
	return b.Time.OnDate(b.Date)
}

// SlotKey ключ слота "YYYY-MM-DD|HH:MM"
func (b *Booking) SlotKey() string {
	return SlotKey(b.Date, b.Time)
}

// SlotKey ключ слота для блокировок и логов
func SlotKey(date time.Time, t types.TimeString) string {
	return date.Format(DateFormat) + "|" + t.String()
}

// Title человекочитаемое название категории
func (c Category) Title() string {
	switch c {
	case CategoryApplicant:
		return "Абитуриент"
	case CategoryParent:
		return "Родитель"
	default:
		return string(c)
	}
}

// Title человекочитаемое название мессенджера
func (m Messenger) Title() string {
	switch m {
	case MessengerTelegram:
		return "Telegram"
	case MessengerWhatsApp:
		return "WhatsApp"
	case MessengerViber:
		return "Viber"
	default:
		return "Email"
	}
}

// BookingsFilter фильтр списка записей для админ-панели
type BookingsFilter struct {
	Search         string         // подстрока в ФИО, email или телефоне
	Status         *BookingStatus // фильтр по статусу (опционально)
	From           *time.Time     // начало периода (включительно)
	To             *time.Time     // конец периода (включительно)
	IncludeDeleted bool           // включать снятые записи
}
