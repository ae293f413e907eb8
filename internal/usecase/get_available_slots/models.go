package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	Date time.Time // Дата (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date  time.Time              // Дата, на которую запрашивались слоты
	Slots []domain.AvailableSlot // Свободные часы в порядке окон расписания
}
