package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ConsultationService/pkg/txmanager"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// Config параметры приема записей
type Config struct {
	EnforceSchedule bool          // час должен входить в расписание на дату
	NotifyWait      time.Duration // сколько ответ ждет флаги уведомлений
}

// UseCase прием записи на консультацию
type UseCase struct {
	bookingRepo  BookingRepository
	availability Availability
	txManager    TransactionManager
	notifier     Notifier
	locker       SlotLocker
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	cfg          Config
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availability Availability,
	txManager TransactionManager,
	notifier Notifier,
	locker SlotLocker,
	metrics Metrics,
	logger Logger,
	cfg Config,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		availability: availability,
		txManager:    txManager,
		notifier:     notifier,
		locker:       locker,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		cfg:          cfg,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute принимает заявку: проверка, экранирование, атомарная вставка, уведомления
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции;
// частичный уникальный индекс в БД отсекает гонку, которую транзакция не поймала.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	normalize(req)
	uc.logger.Info("CreateBooking: date=%s, time=%s, category=%s", req.Date, req.Time, req.Category)

	// 1. Валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	date, err := types.ParseDate(req.Date)
	if err != nil {
		return nil, newValidationError("date", "expected YYYY-MM-DD")
	}
	if date.Before(types.DateOnly(uc.timeProvider.Now())) {
		uc.logger.Warn("CreateBooking: date=%s is in the past", req.Date)
		return nil, newValidationError("date", "date is in the past")
	}

	// 2. Час должен быть открыт по расписанию
	if uc.cfg.EnforceSchedule {
		ok, err := uc.availability.IsScheduled(ctx, date, types.TimeString(req.Time))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to check schedule: %w", ErrInternal, err)
		}
		if !ok {
			uc.logger.Warn("CreateBooking: %s %s is outside working hours", req.Date, req.Time)
			return nil, newValidationError("time", "slot is not available on this date")
		}
	}

	// 3. Экранирование свободного текста
	booking := toBooking(req, date)

	// 4. Атомарная проверка и вставка
	unlock := uc.locker.Lock(booking.SlotKey())

	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetActiveBySlot(txCtx, booking.Date, booking.Time)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: failed to check slot: %w", ErrInternal, err)
		}
		if existing != nil {
			return ErrSlotTaken
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return ErrSlotTaken
		}
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}
		return nil
	})
	// уведомления отправляются уже без блокировки слота
	unlock()

	switch {
	case err == nil:
	case errors.Is(err, ErrSlotTaken), errors.Is(err, txmanager.ErrSerialization):
		// исчерпанные повторы означают, что слот забрала параллельная транзакция
		uc.metrics.IncSlotConflicts()
		uc.logger.Warn("CreateBooking: slot %s already taken", booking.SlotKey())
		return nil, ErrSlotTaken
	case errors.Is(err, ErrInternal):
		uc.logger.Error("CreateBooking: %v", err)
		return nil, err
	default:
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	uc.metrics.IncBookingsAdmitted()
	uc.logger.Info("CreateBooking: booking id=%d admitted for %s", created.ID, created.SlotKey())

	// 5. Уведомления не влияют на результат
	result := uc.notifier.Dispatch(created, uc.cfg.NotifyWait)

	return &Response{Booking: created, Notifications: result}, nil
}
