package get_available_slots

import (
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// computeSlots строит свободные слоты из окон расписания
// Каждое окно дает по слоту на целый час в [start, end); занятые часы выбрасываются.
// Порядок: окна как пришли из хранилища, внутри окна по возрастанию часа.
// Совпадающие часы разных консультантов не схлопываются.
func computeSlots(entries []*domain.ScheduleEntry, occupied []types.TimeString) []domain.AvailableSlot {
	taken := make(map[types.TimeString]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}

	slots := make([]domain.AvailableSlot, 0)
	for _, entry := range entries {
		if entry == nil || !entry.IsActive {
			continue
		}
		for _, t := range entry.HourlySlots() {
			if _, busy := taken[t]; busy {
				continue
			}
			slots = append(slots, domain.AvailableSlot{
				Time:           t,
				ConsultantID:   entry.ConsultantID,
				ConsultantName: entry.ConsultantName,
				Available:      true,
			})
		}
	}

	return slots
}

// coversTime попадает ли час t в какое-либо окно
func coversTime(entries []*domain.ScheduleEntry, t types.TimeString) bool {
	for _, entry := range entries {
		if entry == nil || !entry.IsActive {
			continue
		}
		for _, slot := range entry.HourlySlots() {
			if slot == t {
				return true
			}
		}
	}
	return false
}
