package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fisiovita/clinic-booking/internal/domain"
	"github.com/fisiovita/clinic-booking/pkg/dbmetrics"
	"github.com/fisiovita/clinic-booking/pkg/psqlbuilder"
)

// Repository reads the services table (the clinic's sellable catalog)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a service catalog repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive returns active services ordered by display order
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"description",
		"icon",
		"order_index",
		"is_active",
		"created_at",
	).
		From("services").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("order_index ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var (
			service   domain.Service
			createdAt sql.NullTime
		)
		err := rows.Scan(
			&service.ID,
			&service.Title,
			&service.Description,
			&service.Icon,
			&service.OrderIndex,
			&service.IsActive,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %w", ErrScanRow, err)
		}
		service.CreatedAt = createdAt.Time
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %w", ErrScanRow, err)
	}

	return services, nil
}

// ListActiveTitles returns just the titles of active services, in display
// order. Admission validates the requested service type against this list.
func (r *Repository) ListActiveTitles(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("title").
		From("services").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("order_index ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveTitles - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveTitles - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	titles := make([]string, 0)
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("%w: ListActiveTitles - scan row: %w", ErrScanRow, err)
		}
		titles = append(titles, title)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveTitles - rows error: %w", ErrScanRow, err)
	}

	return titles, nil
}

// ListAll returns every service, active or not, in display order. The admin
// panel manages the catalog through this view.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"description",
		"icon",
		"order_index",
		"is_active",
		"created_at",
	).
		From("services").
		OrderBy("order_index ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var (
			service   domain.Service
			createdAt sql.NullTime
		)
		err := rows.Scan(
			&service.ID,
			&service.Title,
			&service.Description,
			&service.Icon,
			&service.OrderIndex,
			&service.IsActive,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %w", ErrScanRow, err)
		}
		service.CreatedAt = createdAt.Time
		services = append(services, &service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %w", ErrScanRow, err)
	}

	return services, nil
}

// Create inserts a service and returns it with id and created_at set
func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("title", "description", "icon", "order_index", "is_active").
		Values(service.Title, service.Description, service.Icon, service.OrderIndex, service.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&service.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time

	return service, nil
}

// Update rewrites a service's editable fields
func (r *Repository) Update(ctx context.Context, service *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("title", service.Title).
		Set("description", service.Description).
		Set("icon", service.Icon).
		Set("order_index", service.OrderIndex).
		Set("is_active", service.IsActive).
		Where(squirrel.Eq{"id": service.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Delete removes a service from the catalog
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}
