package domain

import "github.com/m04kA/SMC-ConsultationService/pkg/types"

// AvailableSlot свободный час конкретного консультанта
// Два консультанта, свободные в 10:00, дают два разных слота
type AvailableSlot struct {
	Time           types.TimeString
	ConsultantID   *int64
	ConsultantName *string
	Available      bool
}
