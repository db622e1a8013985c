package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fisiovita/clinic-booking/internal/domain"
	settingsRepo "github.com/fisiovita/clinic-booking/internal/infra/storage/settings"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsRepository) GetByKeys(ctx context.Context, keys []string) (map[string]string, error) {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockSettingsRepository) GetAll(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockSettingsRepository) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestSettingsService_BookingConfig(t *testing.T) {
	repo := &MockSettingsRepository{}
	svc := NewService(repo, fakeTxManager{}, nopLogger{})

	ctx := context.Background()
	repo.On("GetByKeys", ctx, bookingConfigKeys).Return(map[string]string{
		domain.SettingWorkStart:  "10:00",
		domain.SettingMaxPerSlot: "2",
	}, nil).Once()

	cfg, err := svc.BookingConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "10:00", cfg.WorkStart)
	assert.Equal(t, domain.DefaultWorkEnd, cfg.WorkEnd)
	assert.Equal(t, 2, cfg.MaxPerSlot)

	repo.AssertExpectations(t)
}

func TestSettingsService_Update_AllowList(t *testing.T) {
	repo := &MockSettingsRepository{}
	svc := NewService(repo, fakeTxManager{}, nopLogger{})

	ctx := context.Background()
	repo.On("Set", ctx, "site_name", "FisioVita").Return(nil).Once()
	repo.On("Set", ctx, "booking_max_per_slot", "3").Return(nil).Once()

	applied, err := svc.Update(ctx, map[string]string{
		"site_name":           " FisioVita ",
		"bookingMaxPerSlot":   "3",
		"not_a_real_setting":  "dropped",
		"another_unknown_key": "dropped",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"site_name":            "FisioVita",
		"booking_max_per_slot": "3",
	}, applied)

	repo.AssertExpectations(t)
}

func TestSettingsService_Update_NoValidKeys(t *testing.T) {
	repo := &MockSettingsRepository{}
	svc := NewService(repo, fakeTxManager{}, nopLogger{})

	_, err := svc.Update(context.Background(), map[string]string{"bogus": "value"})
	assert.ErrorIs(t, err, ErrNoValidKeys)

	repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettingsService_EmailNotificationsEnabled(t *testing.T) {
	ctx := context.Background()

	t.Run("explicitly disabled", func(t *testing.T) {
		repo := &MockSettingsRepository{}
		svc := NewService(repo, fakeTxManager{}, nopLogger{})
		repo.On("Get", ctx, domain.SettingEmailNotifications).Return("false", nil).Once()
		assert.False(t, svc.EmailNotificationsEnabled(ctx))
	})

	t.Run("explicitly enabled", func(t *testing.T) {
		repo := &MockSettingsRepository{}
		svc := NewService(repo, fakeTxManager{}, nopLogger{})
		repo.On("Get", ctx, domain.SettingEmailNotifications).Return("true", nil).Once()
		assert.True(t, svc.EmailNotificationsEnabled(ctx))
	})

	t.Run("defaults to enabled when unset", func(t *testing.T) {
		repo := &MockSettingsRepository{}
		svc := NewService(repo, fakeTxManager{}, nopLogger{})
		repo.On("Get", ctx, domain.SettingEmailNotifications).
			Return("", settingsRepo.ErrSettingNotFound).Once()
		assert.True(t, svc.EmailNotificationsEnabled(ctx))
	})
}

func TestSettingsService_ShowTestimonials(t *testing.T) {
	ctx := context.Background()

	repo := &MockSettingsRepository{}
	svc := NewService(repo, fakeTxManager{}, nopLogger{})
	repo.On("Get", ctx, domain.SettingShowTestimonials).
		Return("", settingsRepo.ErrSettingNotFound).Once()

	enabled, err := svc.ShowTestimonials(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}
