package models

import (
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// AddBlockedDateRequest запрос на блокировку даты
type AddBlockedDateRequest struct {
	Date         string  `json:"date" validate:"required,date"`
	Reason       *string `json:"reason,omitempty" validate:"omitempty,max=500"`
	ConsultantID *int64  `json:"consultantId,omitempty" validate:"omitempty,gt=0"`
}

// ScheduleEntryResponse окно приема
type ScheduleEntryResponse struct {
	ID             int64   `json:"id"`
	DayOfWeek      int     `json:"dayOfWeek"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	ConsultantID   *int64  `json:"consultantId,omitempty"`
	ConsultantName *string `json:"consultantName,omitempty"`
	IsActive       bool    `json:"isActive"`
}

// ScheduleListResponse все окна приема
type ScheduleListResponse struct {
	Schedules []ScheduleEntryResponse `json:"schedules"`
}

// BlockedDateResponse заблокированная дата
type BlockedDateResponse struct {
	ID             int64     `json:"id"`
	Date           string    `json:"date"`
	Reason         *string   `json:"reason,omitempty"`
	ConsultantID   *int64    `json:"consultantId,omitempty"`
	ConsultantName *string   `json:"consultantName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BlockedDateListResponse список заблокированных дат
type BlockedDateListResponse struct {
	BlockedDates []BlockedDateResponse `json:"blockedDates"`
}

// FromDomainEntries конвертирует окна расписания в DTO
func FromDomainEntries(entries []*domain.ScheduleEntry) *ScheduleListResponse {
	resp := &ScheduleListResponse{Schedules: make([]ScheduleEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Schedules = append(resp.Schedules, ScheduleEntryResponse{
			ID:             e.ID,
			DayOfWeek:      e.DayOfWeek,
			StartTime:      e.StartTime.String(),
			EndTime:        e.EndTime.String(),
			ConsultantID:   e.ConsultantID,
			ConsultantName: e.ConsultantName,
			IsActive:       e.IsActive,
		})
	}
	return resp
}

// FromDomainBlockedDate конвертирует заблокированную дату в DTO
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	if b == nil {
		return nil
	}
	return &BlockedDateResponse{
		ID:             b.ID,
		Date:           types.FormatDate(b.Date),
		Reason:         b.Reason,
		ConsultantID:   b.ConsultantID,
		ConsultantName: b.ConsultantName,
		CreatedAt:      b.CreatedAt,
	}
}

// FromDomainBlockedDates конвертирует список заблокированных дат в DTO
func FromDomainBlockedDates(dates []*domain.BlockedDate) *BlockedDateListResponse {
	resp := &BlockedDateListResponse{BlockedDates: make([]BlockedDateResponse, 0, len(dates))}
	for _, d := range dates {
		resp.BlockedDates = append(resp.BlockedDates, *FromDomainBlockedDate(d))
	}
	return resp
}
