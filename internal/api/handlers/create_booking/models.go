package create_booking

import (
	createBooking "github.com/m04kA/SMC-ConsultationService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date            string `json:"date"` // "2025-06-10"
	Time            string `json:"time"` // "10:00"
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Category        string `json:"category"`
	Messenger       string `json:"messenger,omitempty"`
	MessengerHandle string `json:"messengerHandle,omitempty"`
	Questions       string `json:"questions,omitempty"`
}

// CreatedBooking краткие данные принятой записи
type CreatedBooking struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// NotificationsResponse какие уведомления успели уйти к моменту ответа
type NotificationsResponse struct {
	Telegram bool `json:"telegram"`
	Email    bool `json:"email"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success       bool                  `json:"success"`
	Booking       CreatedBooking        `json:"booking"`
	Notifications NotificationsResponse `json:"notifications"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:            r.Date,
		Time:            r.Time,
		FullName:        r.FullName,
		Email:           r.Email,
		Phone:           r.Phone,
		Category:        r.Category,
		Messenger:       r.Messenger,
		MessengerHandle: r.MessengerHandle,
		Questions:       r.Questions,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success: true,
		Booking: CreatedBooking{
			ID:   resp.Booking.ID,
			Date: types.FormatDate(resp.Booking.Date),
			Time: resp.Booking.Time.String(),
		},
		Notifications: NotificationsResponse{
			Telegram: resp.Notifications.ChatSent,
			Email:    resp.Notifications.EmailSent,
		},
	}
}
