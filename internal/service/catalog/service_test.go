package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fisiovita/clinic-booking/internal/domain"
	catalogRepo "github.com/fisiovita/clinic-booking/internal/infra/storage/catalog"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListActive(ctx context.Context) ([]*domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Service), args.Error(1)
}

func (m *MockCatalogRepository) ListActiveTitles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogRepository) ListAll(ctx context.Context) ([]*domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Service), args.Error(1)
}

func (m *MockCatalogRepository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	args := m.Called(ctx, service)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockCatalogRepository) Update(ctx context.Context, service *domain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockCatalogRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCatalogCreate_RequiresTitle(t *testing.T) {
	repo := &MockCatalogRepository{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), ServiceInput{Title: "   "})
	assert.ErrorIs(t, err, ErrMissingTitle)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCatalogCreate_SanitizesTitle(t *testing.T) {
	repo := &MockCatalogRepository{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Service")).
		Run(func(args mock.Arguments) {
			service := args.Get(1).(*domain.Service)
			assert.Equal(t, "Pilates Clínico", service.Title)
			assert.True(t, service.IsActive)
		}).
		Return(&domain.Service{ID: 3, Title: "Pilates Clínico", IsActive: true}, nil).Once()

	created, err := svc.Create(ctx, ServiceInput{Title: "  Pilates   Clínico ", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	repo.AssertExpectations(t)
}

func TestCatalogUpdate_NotFound(t *testing.T) {
	repo := &MockCatalogRepository{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("Update", ctx, mock.AnythingOfType("*domain.Service")).
		Return(catalogRepo.ErrServiceNotFound).Once()

	_, err := svc.Update(ctx, 77, ServiceInput{Title: "RPG"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCatalogUpdate_Success(t *testing.T) {
	repo := &MockCatalogRepository{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("Update", ctx, mock.AnythingOfType("*domain.Service")).
		Run(func(args mock.Arguments) {
			service := args.Get(1).(*domain.Service)
			assert.Equal(t, int64(5), service.ID)
			assert.Equal(t, "RPG", service.Title)
			assert.Equal(t, 2, service.OrderIndex)
		}).
		Return(nil).Once()

	updated, err := svc.Update(ctx, 5, ServiceInput{Title: "RPG", OrderIndex: 2, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated.ID)
	assert.True(t, updated.IsActive)
}

func TestCatalogDelete(t *testing.T) {
	repo := &MockCatalogRepository{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("Delete", ctx, int64(9)).Return(nil).Once()
	require.NoError(t, svc.Delete(ctx, 9))

	repo.On("Delete", ctx, int64(10)).Return(catalogRepo.ErrServiceNotFound).Once()
	assert.ErrorIs(t, svc.Delete(ctx, 10), ErrServiceNotFound)
}

func TestCatalogListAll(t *testing.T) {
	repo := &MockCatalogRepository{}
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("ListAll", ctx).Return([]*domain.Service{
		{ID: 1, Title: "Pilates", IsActive: true},
		{ID: 2, Title: "Acupuntura", IsActive: false},
	}, nil).Once()

	services, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.False(t, services[1].IsActive)
}
