package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	adminRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/admin"
)

const minPasswordLength = 8

// Service проверка учетных данных администратора
type Service struct {
	adminRepo AdminRepository
	cost      int
	dummyHash []byte
	logger    Logger
}

// NewService создает сервис с bcrypt.DefaultCost
func NewService(adminRepo AdminRepository, logger Logger) *Service {
	return NewServiceWithCost(adminRepo, bcrypt.DefaultCost, logger)
}

// NewServiceWithCost позволяет снизить стоимость хеширования в тестах
func NewServiceWithCost(adminRepo AdminRepository, cost int, logger Logger) *Service {
	// хеш для сравнения при неизвестном email, чтобы время ответа не выдавало наличие учетки
	dummy, _ := bcrypt.GenerateFromPassword([]byte("consultation-dummy-password"), cost)

	return &Service{
		adminRepo: adminRepo,
		cost:      cost,
		dummyHash: dummy,
		logger:    logger,
	}
}

// Login проверяет email и пароль
func (s *Service) Login(ctx context.Context, email, password string) (*domain.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: admin id=%d logged in", user.ID)
	return user, nil
}

// CreateAdmin заводит администратора с bcrypt-хешем пароля
func (s *Service) CreateAdmin(ctx context.Context, email, password string) (*domain.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	user, err := s.adminRepo.Create(ctx, email, string(hash))
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminExists) {
			return nil, ErrAdminExists
		}
		s.logger.Error("CreateAdmin: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: CreateAdmin - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAdmin: admin id=%d created", user.ID)
	return user, nil
}
