package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fisiovita/clinic-booking/internal/domain"
	createBooking "github.com/fisiovita/clinic-booking/internal/usecase/create_booking"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*createBooking.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func postBooking(t *testing.T, handler *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/booking/request", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Handle(w, req)
	return w
}

func TestCreateBookingHandler_Created(t *testing.T) {
	useCase := &MockUseCase{}
	handler := NewHandler(useCase, nopLogger{})

	useCase.On("Execute", mock.Anything, mock.AnythingOfType("*create_booking.Request")).
		Return(&createBooking.Response{
			ID:            42,
			Name:          "Maria Silva",
			PreferredDate: "2026-03-17",
			PreferredTime: "09:00",
			ServiceType:   "Pilates",
			Status:        domain.StatusPending,
			CreatedAt:     time.Date(2026, 3, 16, 10, 30, 0, 0, time.UTC),
		}, nil).Once()

	w := postBooking(t, handler, CreateBookingRequest{
		Name:          "Maria Silva",
		Phone:         "(11) 98765-4321",
		PreferredDate: "2026-03-17",
		PreferredTime: "09:00",
		ServiceType:   "Pilates",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Success bool                  `json:"success"`
		Data    CreateBookingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, int64(42), envelope.Data.ID)
	assert.Equal(t, "pending", envelope.Data.Status)

	useCase.AssertExpectations(t)
}

func TestCreateBookingHandler_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name           string
		useCaseErr     error
		expectedStatus int
	}{
		{name: "slot full", useCaseErr: createBooking.ErrSlotFull, expectedStatus: http.StatusConflict},
		{name: "missing fields", useCaseErr: createBooking.ErrMissingFields, expectedStatus: http.StatusBadRequest},
		{name: "invalid input", useCaseErr: createBooking.ErrInvalidInput, expectedStatus: http.StatusBadRequest},
		{name: "unknown service", useCaseErr: createBooking.ErrUnknownService, expectedStatus: http.StatusBadRequest},
		{name: "time outside window", useCaseErr: createBooking.ErrTimeOutsideWindow, expectedStatus: http.StatusBadRequest},
		{name: "date outside window", useCaseErr: createBooking.ErrDateOutsideWindow, expectedStatus: http.StatusBadRequest},
		{name: "date not bookable", useCaseErr: createBooking.ErrDateNotBookable, expectedStatus: http.StatusBadRequest},
		{name: "internal error", useCaseErr: createBooking.ErrInternal, expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			useCase := &MockUseCase{}
			handler := NewHandler(useCase, nopLogger{})

			useCase.On("Execute", mock.Anything, mock.Anything).
				Return(nil, fmt.Errorf("%w: details", tc.useCaseErr)).Once()

			w := postBooking(t, handler, CreateBookingRequest{Name: "x"})
			assert.Equal(t, tc.expectedStatus, w.Code)

			var envelope struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.False(t, envelope.Success)
			assert.NotEmpty(t, envelope.Message)
		})
	}
}

func TestCreateBookingHandler_InvalidBody(t *testing.T) {
	useCase := &MockUseCase{}
	handler := NewHandler(useCase, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/booking/request", bytes.NewReader([]byte("{broken")))
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCreateBookingHandler_AcceptsWidgetPayload(t *testing.T) {
	useCase := &MockUseCase{}
	handler := NewHandler(useCase, nopLogger{})

	useCase.On("Execute", mock.Anything, mock.AnythingOfType("*create_booking.Request")).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(*createBooking.Request)
			assert.Equal(t, "2026-03-17", req.PreferredDate)
			assert.Equal(t, "09:00", req.PreferredTime)
			assert.Equal(t, "Pilates", req.ServiceType)
		}).
		Return(&createBooking.Response{
			ID:            7,
			Name:          "Maria Silva",
			PreferredDate: "2026-03-17",
			PreferredTime: "09:00",
			ServiceType:   "Pilates",
			Status:        domain.StatusPending,
			CreatedAt:     time.Date(2026, 3, 16, 10, 30, 0, 0, time.UTC),
		}, nil).Once()

	// Raw body exactly as the booking widget sends it
	payload := []byte(`{
		"name": "Maria Silva",
		"email": "maria@example.com",
		"phone": "(11) 98765-4321",
		"preferredDate": "2026-03-17",
		"preferredTime": "09:00",
		"serviceType": "Pilates",
		"notes": "primeira sessão"
	}`)

	req := httptest.NewRequest(http.MethodPost, "/api/booking/request", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"preferredDate":"2026-03-17"`)
	assert.Contains(t, w.Body.String(), `"serviceType":"Pilates"`)

	useCase.AssertExpectations(t)
}
