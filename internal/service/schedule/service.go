package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ConsultationService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ConsultationService/pkg/sanitize"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
	"github.com/m04kA/SMC-ConsultationService/pkg/validation"
)

// Service сервис администрирования расписания и блокировок
type Service struct {
	scheduleRepo ScheduleRepository
	validate     *validation.Validator
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		validate:     validation.New(),
		logger:       logger,
	}
}

// AllSchedules все активные окна приема по дням недели
func (s *Service) AllSchedules(ctx context.Context) (*models.ScheduleListResponse, error) {
	entries, err := s.scheduleRepo.GetAllEntries(ctx)
	if err != nil {
		s.logger.Error("AllSchedules: repository error: %v", err)
		return nil, fmt.Errorf("%w: AllSchedules - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEntries(entries), nil
}

// BlockedDates все заблокированные даты
func (s *Service) BlockedDates(ctx context.Context) (*models.BlockedDateListResponse, error) {
	dates, err := s.scheduleRepo.GetBlockedDates(ctx)
	if err != nil {
		s.logger.Error("BlockedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: BlockedDates - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedDates(dates), nil
}

// AddBlockedDate закрывает запись на дату для всех консультантов
func (s *Service) AddBlockedDate(ctx context.Context, req *models.AddBlockedDateRequest) (*models.BlockedDateResponse, error) {
	req.Date = strings.TrimSpace(req.Date)
	s.logger.Info("AddBlockedDate: blocking date=%s", req.Date)

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("AddBlockedDate: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, err := types.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	blocked := &domain.BlockedDate{
		Date:         date,
		ConsultantID: req.ConsultantID,
	}
	if req.Reason != nil {
		if reason := sanitize.Text(*req.Reason); reason != "" {
			blocked.Reason = &reason
		}
	}

	created, err := s.scheduleRepo.AddBlockedDate(ctx, blocked)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDateAlreadyBlocked) {
			s.logger.Warn("AddBlockedDate: date=%s already blocked", req.Date)
			return nil, ErrDateAlreadyBlocked
		}
		s.logger.Error("AddBlockedDate: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: AddBlockedDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddBlockedDate: date=%s blocked with id=%d", req.Date, created.ID)
	return models.FromDomainBlockedDate(created), nil
}

// RemoveBlockedDate снимает блокировку
func (s *Service) RemoveBlockedDate(ctx context.Context, id int64) error {
	s.logger.Info("RemoveBlockedDate: removing blocked date id=%d", id)

	if err := s.scheduleRepo.RemoveBlockedDate(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("RemoveBlockedDate: blocked date id=%d not found", id)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("RemoveBlockedDate: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: RemoveBlockedDate - repository error: %v", ErrInternal, err)
	}

	return nil
}
