package domain

import (
	"time"

	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// Consultant сотрудник, проводящий консультации
type Consultant struct {
	ID   int64
	Name string
}

// ScheduleEntry еженедельное окно приема
type ScheduleEntry struct {
	ID             int64
	DayOfWeek      int // 1 = понедельник .. 7 = воскресенье
	StartTime      types.TimeString
	EndTime        types.TimeString
	ConsultantID   *int64
	ConsultantName *string
	IsActive       bool
}

// HourlySlots часы начала слотов в окне [StartTime, EndTime)
// Минуты отбрасываются: окно 09:30-12:00 дает 09:00, 10:00, 11:00
func (e *ScheduleEntry) HourlySlots() []types.TimeString {
	start := e.StartTime.Hour()
	end := e.EndTime.Hour()
	if start < 0 || end < 0 || end <= start {
		return nil
	}

	slots := make([]types.TimeString, 0, end-start)
	for h := start; h < end; h++ {
		slots = append(slots, types.NewHourTimeString(h))
	}
	return slots
}

// BlockedDate день, в который запись закрыта целиком
// ConsultantID хранится, но блокировка действует на всех консультантов
type BlockedDate struct {
	ID             int64
	Date           time.Time
	Reason         *string
	ConsultantID   *int64
	ConsultantName *string
	CreatedAt      time.Time
}
