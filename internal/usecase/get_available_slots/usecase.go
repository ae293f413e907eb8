package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// UseCase вычисляет свободные слоты на дату
// Состояния не хранит: результат определяется расписанием, блокировками, записями и часами.
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := types.DateOnly(req.Date)
	resp := &Response{Date: date, Slots: []domain.AvailableSlot{}}

	entries, ok, err := uc.workingEntries(ctx, date)
	if err != nil {
		return nil, err
	}
	if !ok {
		return resp, nil
	}

	occupied, err := uc.bookingRepo.GetOccupiedTimes(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get occupied times for %s: %v", types.FormatDate(date), err)
		return nil, fmt.Errorf("%w: failed to get occupied times: %w", ErrInternal, err)
	}

	resp.Slots = computeSlots(entries, occupied)

	uc.logger.Info("GetAvailableSlots: date=%s, entries=%d, occupied=%d, free=%d",
		types.FormatDate(date), len(entries), len(occupied), len(resp.Slots))

	return resp, nil
}

// IsScheduled открыт ли час t на дату по расписанию, без учета занятости
func (uc *UseCase) IsScheduled(ctx context.Context, date time.Time, t types.TimeString) (bool, error) {
	entries, ok, err := uc.workingEntries(ctx, types.DateOnly(date))
	if err != nil || !ok {
		return false, err
	}
	return t == t.TruncateToHour() && coversTime(entries, t), nil
}

// workingEntries окна расписания на дату; ok=false для прошедших, заблокированных и нерабочих дней
func (uc *UseCase) workingEntries(ctx context.Context, date time.Time) ([]*domain.ScheduleEntry, bool, error) {
	if isDateInPast(date, uc.timeProvider.Now()) {
		uc.logger.Info("GetAvailableSlots: date=%s is in the past", types.FormatDate(date))
		return nil, false, nil
	}

	blocked, err := uc.scheduleRepo.IsDateBlocked(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to check blocked date %s: %v", types.FormatDate(date), err)
		return nil, false, fmt.Errorf("%w: failed to check blocked date: %w", ErrInternal, err)
	}
	if blocked {
		uc.logger.Info("GetAvailableSlots: date=%s is blocked", types.FormatDate(date))
		return nil, false, nil
	}

	dayOfWeek := types.ISOWeekday(date)
	entries, err := uc.scheduleRepo.GetEntriesForDayOfWeek(ctx, dayOfWeek)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule for day=%d: %v", dayOfWeek, err)
		return nil, false, fmt.Errorf("%w: failed to get schedule: %w", ErrInternal, err)
	}
	if len(entries) == 0 {
		uc.logger.Info("GetAvailableSlots: date=%s is a non-working day", types.FormatDate(date))
		return nil, false, nil
	}

	return entries, true, nil
}
