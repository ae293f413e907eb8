package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// Request модели

// ListBookingsRequest фильтры списка записей в админ-панели
type ListBookingsRequest struct {
	Search string  `json:"search,omitempty"`
	Status *string `json:"status,omitempty"`
	From   *string `json:"from,omitempty"` // "2025-06-01"
	To     *string `json:"to,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{Search: strings.TrimSpace(r.Search)}

	if r.Status != nil && *r.Status != "" {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	var err error
	if filter.From, err = parseOptionalDate(r.From); err != nil {
		return filter, err
	}
	if filter.To, err = parseOptionalDate(r.To); err != nil {
		return filter, err
	}

	return filter, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := types.ParseDate(*s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &d, nil
}

// Response модели

// BookingResponse ответ с данными записи
type BookingResponse struct {
	ID              int64     `json:"id"`
	Date            string    `json:"date"` // "2025-06-10"
	Time            string    `json:"time"` // "10:00"
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Category        string    `json:"category"`
	Messenger       string    `json:"messenger"`
	MessengerHandle string    `json:"messengerHandle,omitempty"`
	Questions       string    `json:"questions,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком записей
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// OccupiedTimesResponse занятые часы на дату
type OccupiedTimesResponse struct {
	Date          string   `json:"date"`
	OccupiedTimes []string `json:"occupiedTimes"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		Date:            types.FormatDate(b.Date),
		Time:            b.Time.String(),
		FullName:        b.FullName,
		Email:           b.Email,
		Phone:           b.Phone,
		Category:        string(b.Category),
		Messenger:       string(b.Messenger),
		MessengerHandle: b.MessengerHandle,
		Questions:       b.Questions,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	resp.Total = len(resp.Bookings)
	return resp
}

// ToDomainBookingStatus конвертирует строковый статус в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status, ok := domain.ParseBookingStatus(strings.TrimSpace(s))
	if !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}
