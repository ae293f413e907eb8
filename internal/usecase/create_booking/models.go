package create_booking

import (
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/service/notifications"
)

// Request заявка на консультацию в том виде, в каком пришла из формы
type Request struct {
	Date            string `json:"date" validate:"required,date"`
	Time            string `json:"time" validate:"required,clock"`
	FullName        string `json:"fullName" validate:"required,max=200"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Phone           string `json:"phone" validate:"required,phone"`
	Category        string `json:"category" validate:"required,oneof=applicant parent"`
	Messenger       string `json:"messenger" validate:"omitempty,oneof=none telegram whatsapp viber"`
	MessengerHandle string `json:"messengerHandle" validate:"max=100"`
	Questions       string `json:"questions" validate:"max=2000"`
}

// Response принятая запись и флаги отправленных уведомлений
type Response struct {
	Booking       *domain.Booking
	Notifications notifications.Result
}
