package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// Service сервис для работы с записями в админ-панели
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (DTSTAMP в календаре)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает записи с поиском и фильтрами, новые сверху
// Снятые администратором записи не попадают в выдачу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("List: fetching bookings, search=%q", filter.Search)

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// OccupiedTimes часы, занятые активными записями на дату
func (s *Service) OccupiedTimes(ctx context.Context, date time.Time) (*models.OccupiedTimesResponse, error) {
	times, err := s.bookingRepo.GetOccupiedTimes(ctx, date)
	if err != nil {
		s.logger.Error("OccupiedTimes: repository error for date=%s: %v", types.FormatDate(date), err)
		return nil, fmt.Errorf("%w: OccupiedTimes - repository error: %v", ErrInternal, err)
	}

	resp := &models.OccupiedTimesResponse{
		Date:          types.FormatDate(date),
		OccupiedTimes: make([]string, 0, len(times)),
	}
	for _, t := range times {
		resp.OccupiedTimes = append(resp.OccupiedTimes, t.String())
	}
	return resp, nil
}

// UpdateStatus меняет статус записи
// cancelled освобождает слот; возврат в активный статус на занятый слот дает ErrSlotTaken
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", id, status)

	newStatus, err := models.ToDomainBookingStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%d", status, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	booking, err := s.bookingRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			s.logger.Warn("UpdateStatus: slot of booking id=%d is taken by another booking", id)
			return nil, ErrSlotTaken
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", id, newStatus)
	return models.FromDomainBooking(booking), nil
}

// Delete снимает запись: она отменяется, освобождает слот и скрывается из выдачи
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// ExportOne календарь ICS с одной записью
func (s *Service) ExportOne(ctx context.Context, id int64) (string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("ExportOne: booking id=%d not found", id)
			return "", ErrBookingNotFound
		}
		s.logger.Error("ExportOne: repository error for booking id=%d: %v", id, err)
		return "", fmt.Errorf("%w: ExportOne - repository error: %v", ErrInternal, err)
	}

	return renderCalendar([]*domain.Booking{booking}, s.timeProvider.Now()), nil
}

// ExportAll календарь ICS со всеми записями, подходящими под фильтр
func (s *Service) ExportAll(ctx context.Context, req *models.ListBookingsRequest) (string, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ExportAll: invalid filter: %v", err)
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ExportAll: repository error: %v", err)
		return "", fmt.Errorf("%w: ExportAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ExportAll: exporting %d bookings", len(bookings))
	return renderCalendar(bookings, s.timeProvider.Now()), nil
}
