package get_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fisiovita/clinic-booking/internal/domain"
	getAvailability "github.com/fisiovita/clinic-booking/internal/usecase/get_availability"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailability.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetAvailabilityHandler_ResponseShape(t *testing.T) {
	useCase := &MockUseCase{}
	handler := NewHandler(useCase, nopLogger{})

	useCase.On("Execute", mock.Anything, &getAvailability.Request{SelectedDate: "2026-03-17"}).
		Return(&getAvailability.Response{
			Services: []string{"Pilates"},
			Config: getAvailability.Config{
				WorkStart:           "09:00",
				WorkEnd:             "11:00",
				SlotIntervalMinutes: 60,
				MaxPerSlot:          2,
				HorizonDays:         7,
				EnabledWeekdays:     []int{1, 2, 3, 4, 5},
				BlockedDates:        []string{"2026-03-18"},
			},
			Dates: []domain.DateAvailability{
				{Date: "2026-03-17", Available: true, TotalSlots: 2, AvailableSlots: 1},
			},
			SelectedDate: "2026-03-17",
			Slots: []domain.SlotAvailability{
				{Time: "09:00", Available: true, Booked: 1, Remaining: 1},
			},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/booking/availability?date=2026-03-17", nil)
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// Keys the booking widget destructures
	body := w.Body.String()
	assert.Contains(t, body, `"selectedDate":"2026-03-17"`)
	assert.Contains(t, body, `"workStart":"09:00"`)
	assert.Contains(t, body, `"slotIntervalMinutes":60`)
	assert.Contains(t, body, `"enabledWeekdays":[1,2,3,4,5]`)
	assert.Contains(t, body, `"blockedDates":["2026-03-18"]`)
	assert.Contains(t, body, `"totalSlots":2`)
	assert.Contains(t, body, `"availableSlots":1`)

	useCase.AssertExpectations(t)
}

func TestGetAvailabilityHandler_InvalidDate(t *testing.T) {
	useCase := &MockUseCase{}
	handler := NewHandler(useCase, nopLogger{})

	useCase.On("Execute", mock.Anything, mock.Anything).
		Return(nil, getAvailability.ErrInvalidDate).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/booking/availability?date=17-03-2026", nil)
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
