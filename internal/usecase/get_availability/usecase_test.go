package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CountByDateRange(ctx context.Context, from, to time.Time) ([]domain.SlotUsage, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SlotUsage), args.Error(1)
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) BookingConfig(ctx context.Context) (*domain.BookingConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingConfig), args.Error(1)
}

type MockServiceCatalog struct {
	mock.Mock
}

func (m *MockServiceCatalog) ListActiveTitles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Monday 2026-03-16, mid-morning
var testNow = time.Date(2026, 3, 16, 10, 30, 0, 0, time.UTC)

func testConfig() *domain.BookingConfig {
	return &domain.BookingConfig{
		WorkStart:           "09:00",
		WorkEnd:             "11:00",
		SlotIntervalMinutes: 60,
		MaxPerSlot:          2,
		HorizonDays:         7,
		EnabledWeekdays:     []int{1, 2, 3, 4, 5},
		BlockedDates:        map[string]bool{"2026-03-18": true},
	}
}

func newTestUseCase(repo *MockBookingRepository, settings *MockSettingsService, catalog *MockServiceCatalog) *UseCase {
	uc := NewUseCase(repo, settings, catalog, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func TestGetAvailability_Snapshot(t *testing.T) {
	repo := &MockBookingRepository{}
	settings := &MockSettingsService{}
	catalog := &MockServiceCatalog{}
	uc := newTestUseCase(repo, settings, catalog)

	ctx := context.Background()
	settings.On("BookingConfig", ctx).Return(testConfig(), nil).Once()
	repo.On("CountByDateRange", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]domain.SlotUsage{
			{Date: "2026-03-16", Time: "09:00", Booked: 2},
			{Date: "2026-03-17", Time: "09:00", Booked: 1},
		}, nil).Once()
	catalog.On("ListActiveTitles", ctx).Return([]string{"Fisioterapia Ortopédica", "Pilates"}, nil).Once()

	result, err := uc.Execute(ctx, &Request{})
	require.NoError(t, err)

	// 8 days: today through today+7 inclusive
	require.Len(t, result.Dates, 8)
	assert.Equal(t, "2026-03-16", result.Dates[0].Date)
	assert.Equal(t, "2026-03-23", result.Dates[7].Date)

	// Monday: one of two slots is full
	monday := result.Dates[0]
	assert.True(t, monday.Available)
	assert.Equal(t, 2, monday.TotalSlots)
	assert.Equal(t, 1, monday.AvailableSlots)

	// Tuesday: partially booked slot still has room
	tuesday := result.Dates[1]
	assert.True(t, tuesday.Available)
	assert.Equal(t, 2, tuesday.AvailableSlots)

	// Wednesday is blocked
	wednesday := result.Dates[2]
	assert.False(t, wednesday.Available)
	assert.Equal(t, 0, wednesday.TotalSlots)
	assert.Equal(t, 0, wednesday.AvailableSlots)

	// Weekend is disabled
	assert.False(t, result.Dates[5].Available) // Saturday 21st
	assert.False(t, result.Dates[6].Available) // Sunday 22nd

	// No date requested: first available date wins
	assert.Equal(t, "2026-03-16", result.SelectedDate)

	// Slot breakdown agrees with the per-date counts
	require.Len(t, result.Slots, 2)
	assert.Equal(t, domain.SlotAvailability{Time: "09:00", Available: false, Booked: 2, Remaining: 0}, result.Slots[0])
	assert.Equal(t, domain.SlotAvailability{Time: "10:00", Available: true, Booked: 0, Remaining: 2}, result.Slots[1])

	assert.Equal(t, []string{"Fisioterapia Ortopédica", "Pilates"}, result.Services)
	assert.Equal(t, 7, result.Config.HorizonDays)

	repo.AssertExpectations(t)
	settings.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestGetAvailability_RequestedDateInsideWindow(t *testing.T) {
	repo := &MockBookingRepository{}
	settings := &MockSettingsService{}
	catalog := &MockServiceCatalog{}
	uc := newTestUseCase(repo, settings, catalog)

	ctx := context.Background()
	settings.On("BookingConfig", ctx).Return(testConfig(), nil)
	repo.On("CountByDateRange", ctx, mock.Anything, mock.Anything).Return([]domain.SlotUsage{}, nil)
	catalog.On("ListActiveTitles", ctx).Return([]string{}, nil)

	result, err := uc.Execute(ctx, &Request{SelectedDate: "2026-03-20"})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-20", result.SelectedDate)
	assert.Len(t, result.Slots, 2)
}

func TestGetAvailability_RequestedBlockedDateKeptWithEmptySlots(t *testing.T) {
	repo := &MockBookingRepository{}
	settings := &MockSettingsService{}
	catalog := &MockServiceCatalog{}
	uc := newTestUseCase(repo, settings, catalog)

	ctx := context.Background()
	settings.On("BookingConfig", ctx).Return(testConfig(), nil)
	repo.On("CountByDateRange", ctx, mock.Anything, mock.Anything).Return([]domain.SlotUsage{}, nil)
	catalog.On("ListActiveTitles", ctx).Return([]string{}, nil)

	// The blocked Wednesday is inside the window, so the choice is honored
	// but no slots are offered
	result, err := uc.Execute(ctx, &Request{SelectedDate: "2026-03-18"})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-18", result.SelectedDate)
	assert.Empty(t, result.Slots)
}

func TestGetAvailability_RequestedDateOutsideWindowFallsBack(t *testing.T) {
	repo := &MockBookingRepository{}
	settings := &MockSettingsService{}
	catalog := &MockServiceCatalog{}
	uc := newTestUseCase(repo, settings, catalog)

	ctx := context.Background()
	settings.On("BookingConfig", ctx).Return(testConfig(), nil)
	repo.On("CountByDateRange", ctx, mock.Anything, mock.Anything).Return([]domain.SlotUsage{}, nil)
	catalog.On("ListActiveTitles", ctx).Return([]string{}, nil)

	result, err := uc.Execute(ctx, &Request{SelectedDate: "2026-06-01"})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-16", result.SelectedDate)
}

func TestGetAvailability_NoAvailableDatesFallsBackToFirst(t *testing.T) {
	repo := &MockBookingRepository{}
	settings := &MockSettingsService{}
	catalog := &MockServiceCatalog{}
	uc := newTestUseCase(repo, settings, catalog)

	// An inverted window yields an empty grid, so no date has open slots
	cfg := testConfig()
	cfg.WorkStart = "11:00"
	cfg.WorkEnd = "09:00"

	ctx := context.Background()
	settings.On("BookingConfig", ctx).Return(cfg, nil)
	repo.On("CountByDateRange", ctx, mock.Anything, mock.Anything).Return([]domain.SlotUsage{}, nil)
	catalog.On("ListActiveTitles", ctx).Return([]string{}, nil)

	result, err := uc.Execute(ctx, &Request{})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-16", result.SelectedDate)
	assert.Empty(t, result.Slots)
	for _, d := range result.Dates {
		assert.False(t, d.Available)
	}
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	repo := &MockBookingRepository{}
	settings := &MockSettingsService{}
	catalog := &MockServiceCatalog{}
	uc := newTestUseCase(repo, settings, catalog)

	_, err := uc.Execute(context.Background(), &Request{SelectedDate: "15/03/2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGetAvailability_Idempotent(t *testing.T) {
	repo := &MockBookingRepository{}
	settings := &MockSettingsService{}
	catalog := &MockServiceCatalog{}
	uc := newTestUseCase(repo, settings, catalog)

	ctx := context.Background()
	settings.On("BookingConfig", ctx).Return(testConfig(), nil)
	repo.On("CountByDateRange", ctx, mock.Anything, mock.Anything).Return([]domain.SlotUsage{
		{Date: "2026-03-17", Time: "10:00", Booked: 1},
	}, nil)
	catalog.On("ListActiveTitles", ctx).Return([]string{"Pilates"}, nil)

	first, err := uc.Execute(ctx, &Request{})
	require.NoError(t, err)
	second, err := uc.Execute(ctx, &Request{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetAvailability_ConfigEchoesCalendarRules(t *testing.T) {
	repo := &MockBookingRepository{}
	settings := &MockSettingsService{}
	catalog := &MockServiceCatalog{}
	uc := newTestUseCase(repo, settings, catalog)

	cfg := testConfig()
	cfg.BlockedDates = map[string]bool{"2026-03-20": true, "2026-03-18": true}

	ctx := context.Background()
	settings.On("BookingConfig", ctx).Return(cfg, nil)
	repo.On("CountByDateRange", ctx, mock.Anything, mock.Anything).Return([]domain.SlotUsage{}, nil)
	catalog.On("ListActiveTitles", ctx).Return([]string{}, nil)

	result, err := uc.Execute(ctx, &Request{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, result.Config.EnabledWeekdays)
	assert.Equal(t, []string{"2026-03-18", "2026-03-20"}, result.Config.BlockedDates)
}

func TestGetAvailability_HonorsTodayWestOfUTC(t *testing.T) {
	repo := &MockBookingRepository{}
	settings := &MockSettingsService{}
	catalog := &MockServiceCatalog{}
	uc := newTestUseCase(repo, settings, catalog)

	// Monday 2026-03-16 10:30 in UTC-3: asking for that same Monday must be
	// honored instead of falling back to another date
	brt := time.FixedZone("-03", -3*60*60)
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 3, 16, 10, 30, 0, 0, brt)}

	ctx := context.Background()
	settings.On("BookingConfig", ctx).Return(testConfig(), nil)
	repo.On("CountByDateRange", ctx, mock.Anything, mock.Anything).Return([]domain.SlotUsage{}, nil)
	catalog.On("ListActiveTitles", ctx).Return([]string{}, nil)

	result, err := uc.Execute(ctx, &Request{SelectedDate: "2026-03-16"})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-16", result.SelectedDate)
	assert.Len(t, result.Slots, 2)
	assert.Equal(t, "2026-03-16", result.Dates[0].Date)
}
