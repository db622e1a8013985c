package testimonials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fisiovita/clinic-booking/internal/domain"
	testimonialRepo "github.com/fisiovita/clinic-booking/internal/infra/storage/testimonial"
)

type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) Create(ctx context.Context, tm *domain.Testimonial) (*domain.Testimonial, error) {
	args := m.Called(ctx, tm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) ListActive(ctx context.Context, limit int) ([]*domain.Testimonial, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Testimonial), args.Error(1)
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) ShowTestimonials(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestTestimonialsService_Submit(t *testing.T) {
	repo := &MockTestimonialRepository{}
	settings := &MockSettingsService{}
	svc := NewService(repo, settings, nopLogger{})

	ctx := context.Background()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Testimonial")).
		Run(func(args mock.Arguments) {
			tm := args.Get(1).(*domain.Testimonial)
			assert.False(t, tm.IsActive, "new testimonials await approval")
		}).
		Return(&domain.Testimonial{ID: 1, Name: "João", Text: "Excelente atendimento", Rating: 5}, nil).Once()

	created, err := svc.Submit(ctx, SubmitInput{Name: " João ", Text: "Excelente  atendimento", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	repo.AssertExpectations(t)
}

func TestTestimonialsService_Submit_Validation(t *testing.T) {
	repo := &MockTestimonialRepository{}
	settings := &MockSettingsService{}
	svc := NewService(repo, settings, nopLogger{})
	ctx := context.Background()

	_, err := svc.Submit(ctx, SubmitInput{Name: "", Text: "ok", Rating: 5})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Submit(ctx, SubmitInput{Name: "João", Text: "ok", Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.Submit(ctx, SubmitInput{Name: "João", Text: "ok", Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTestimonialsService_ListPublic_Gated(t *testing.T) {
	ctx := context.Background()

	t.Run("enabled", func(t *testing.T) {
		repo := &MockTestimonialRepository{}
		settings := &MockSettingsService{}
		svc := NewService(repo, settings, nopLogger{})

		settings.On("ShowTestimonials", ctx).Return(true, nil).Once()
		repo.On("ListActive", ctx, publicListLimit).Return([]*domain.Testimonial{
			{ID: 1, Rating: 5},
		}, nil).Once()

		items, err := svc.ListPublic(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("disabled", func(t *testing.T) {
		repo := &MockTestimonialRepository{}
		settings := &MockSettingsService{}
		svc := NewService(repo, settings, nopLogger{})

		settings.On("ShowTestimonials", ctx).Return(false, nil).Once()

		items, err := svc.ListPublic(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)

		repo.AssertNotCalled(t, "ListActive", mock.Anything, mock.Anything)
	})
}

func (m *MockTestimonialRepository) ListAll(ctx context.Context) ([]*domain.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockTestimonialRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestTestimonialsService_ListAll_IncludesPending(t *testing.T) {
	repo := &MockTestimonialRepository{}
	svc := NewService(repo, &MockSettingsService{}, nopLogger{})
	ctx := context.Background()

	repo.On("ListAll", ctx).Return([]*domain.Testimonial{
		{ID: 2, Name: "Ana", IsActive: false},
		{ID: 1, Name: "João", IsActive: true},
	}, nil).Once()

	items, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.False(t, items[0].IsActive)
}

func TestTestimonialsService_Approve(t *testing.T) {
	repo := &MockTestimonialRepository{}
	svc := NewService(repo, &MockSettingsService{}, nopLogger{})
	ctx := context.Background()

	repo.On("SetActive", ctx, int64(4), true).Return(nil).Once()
	require.NoError(t, svc.Approve(ctx, 4))

	repo.On("SetActive", ctx, int64(5), true).Return(testimonialRepo.ErrTestimonialNotFound).Once()
	assert.ErrorIs(t, svc.Approve(ctx, 5), ErrTestimonialNotFound)

	repo.AssertExpectations(t)
}

func TestTestimonialsService_Delete(t *testing.T) {
	repo := &MockTestimonialRepository{}
	svc := NewService(repo, &MockSettingsService{}, nopLogger{})
	ctx := context.Background()

	repo.On("Delete", ctx, int64(4)).Return(nil).Once()
	require.NoError(t, svc.Delete(ctx, 4))

	repo.On("Delete", ctx, int64(5)).Return(testimonialRepo.ErrTestimonialNotFound).Once()
	assert.ErrorIs(t, svc.Delete(ctx, 5), ErrTestimonialNotFound)
}
