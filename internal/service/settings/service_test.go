package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/service/settings/models"
	"github.com/m04kA/SMC-ConsultationService/pkg/logger"
)

type fakeRepo struct {
	values map[string]string
	err    error
}

func (r *fakeRepo) GetAll(context.Context) ([]*domain.Setting, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Setting, 0, len(r.values))
	for k, v := range r.values {
		out = append(out, &domain.Setting{Key: k, Value: v})
	}
	return out, nil
}

func (r *fakeRepo) Upsert(_ context.Context, key, value string) (*domain.Setting, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.values[key] = value
	return &domain.Setting{Key: key, Value: value}, nil
}

func TestGetAll(t *testing.T) {
	svc := NewService(&fakeRepo{values: map[string]string{
		"slot_duration_minutes": "60",
		"booking_horizon_days":  "60",
	}}, logger.NewNop())

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"slot_duration_minutes": "60", "booking_horizon_days": "60"}, resp.Settings)
}

func TestUpdate(t *testing.T) {
	repo := &fakeRepo{values: map[string]string{}}
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.Update(context.Background(), "booking_horizon_days", &models.UpdateSettingRequest{Value: " 30 "})
	require.NoError(t, err)
	assert.Equal(t, "30", resp.Value)
	assert.Equal(t, "30", repo.values["booking_horizon_days"])

	_, err = svc.Update(context.Background(), "welcome_text", &models.UpdateSettingRequest{Value: "Добро пожаловать"})
	require.NoError(t, err)
}

func TestUpdate_Invalid(t *testing.T) {
	svc := NewService(&fakeRepo{values: map[string]string{}}, logger.NewNop())

	tests := map[string]struct{ key, value string }{
		"bad key":         {"Bad Key", "1"},
		"empty value":     {"welcome_text", "  "},
		"horizon too big": {"booking_horizon_days", "1000"},
		"horizon not int": {"booking_horizon_days", "soon"},
		"sub-hour slots":  {"slot_duration_minutes", "30"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.key, &models.UpdateSettingRequest{Value: tt.value})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRepositoryFailure(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("db down")}, logger.NewNop())

	_, err := svc.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
