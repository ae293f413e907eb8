package settings

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/service/settings/models"
)

var keyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// Service сервис настроек записи
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetAll возвращает все настройки одной картой
func (s *Service) GetAll(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update создает или заменяет значение настройки
// Известные числовые ключи проверяются по диапазону
func (s *Service) Update(ctx context.Context, key string, req *models.UpdateSettingRequest) (*models.SettingResponse, error) {
	key = strings.TrimSpace(key)
	value := strings.TrimSpace(req.Value)
	s.logger.Info("Update: updating setting key=%s", key)

	if err := validateSetting(key, value); err != nil {
		s.logger.Warn("Update: validation failed for key=%s: %v", key, err)
		return nil, err
	}

	setting, err := s.settingsRepo.Upsert(ctx, key, value)
	if err != nil {
		s.logger.Error("Update: repository error for key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated setting key=%s", key)
	return models.FromDomainSetting(setting), nil
}

// validateSetting валидирует ключ и значение настройки
func validateSetting(key, value string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: key must match %s", ErrInvalidInput, keyPattern)
	}
	if value == "" {
		return fmt.Errorf("%w: value is required", ErrInvalidInput)
	}
	if len(value) > domain.MaxSettingValueLength {
		return fmt.Errorf("%w: value is too long", ErrInvalidInput)
	}

	switch key {
	case domain.SettingSlotDurationMinutes:
		// слоты часовые, других длительностей расчет не поддерживает
		if n, err := strconv.Atoi(value); err != nil || n != domain.SlotDurationMinutes {
			return fmt.Errorf("%w: %s must be %d", ErrInvalidInput, key, domain.SlotDurationMinutes)
		}
	case domain.SettingBookingHorizonDays:
		if n, err := strconv.Atoi(value); err != nil || n < 1 || n > 365 {
			return fmt.Errorf("%w: %s must be between 1 and 365", ErrInvalidInput, key)
		}
	}

	return nil
}
