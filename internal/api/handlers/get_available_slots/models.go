package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-ConsultationService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Time         string  `json:"time"`
	Consultant   *string `json:"consultant"`
	ConsultantID *int64  `json:"consultantId,omitempty"`
	Available    bool    `json:"available"`
}

// AvailableSlotsResponse HTTP модель ответа
type AvailableSlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// ToUseCaseRequest парсит дату из пути
func ToUseCaseRequest(date string) (*getAvailableSlots.Request, error) {
	d, err := types.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: d}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:  types.FormatDate(resp.Date),
		Slots: make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Time:         s.Time.String(),
			Consultant:   s.ConsultantName,
			ConsultantID: s.ConsultantID,
			Available:    s.Available,
		})
	}
	return out
}
