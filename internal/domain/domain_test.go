package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

func TestScheduleEntry_HourlySlots(t *testing.T) {
	entry := ScheduleEntry{StartTime: "09:00", EndTime: "17:00"}
	slots := entry.HourlySlots()

	assert.Len(t, slots, 8)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("16:00"), slots[7])
}

func TestScheduleEntry_HourlySlots_TruncatesMinutes(t *testing.T) {
	entry := ScheduleEntry{StartTime: "09:30", EndTime: "11:45"}
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, entry.HourlySlots())
}

func TestScheduleEntry_HourlySlots_Empty(t *testing.T) {
	assert.Empty(t, (&ScheduleEntry{StartTime: "12:00", EndTime: "12:00"}).HourlySlots())
	assert.Empty(t, (&ScheduleEntry{StartTime: "14:00", EndTime: "10:00"}).HourlySlots())
	assert.Empty(t, (&ScheduleEntry{StartTime: "bad", EndTime: "10:00"}).HourlySlots())
}

func TestBooking_Helpers(t *testing.T) {
	b := Booking{
		Date:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Time:   "10:00",
		Status: StatusPending,
	}

	assert.True(t, b.IsActive())
	assert.False(t, b.IsDeleted())
	assert.Equal(t, "2025-06-10|10:00", b.SlotKey())
	assert.Equal(t, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC), b.StartsAt())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
}

func TestParseBookingStatus(t *testing.T) {
	st, ok := ParseBookingStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, st)

	_, ok = ParseBookingStatus("done")
	assert.False(t, ok)
}
