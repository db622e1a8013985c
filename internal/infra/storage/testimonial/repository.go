package testimonial

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fisiovita/clinic-booking/internal/domain"
	"github.com/fisiovita/clinic-booking/pkg/dbmetrics"
	"github.com/fisiovita/clinic-booking/pkg/psqlbuilder"
)

// Repository stores client testimonials
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a testimonial repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a testimonial and returns it with id and created_at set
func (r *Repository) Create(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("testimonials").
		Columns("name", "text", "rating", "is_active").
		Values(t.Name, t.Text, t.Rating, t.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time

	return t, nil
}

// ListActive returns the most recent active testimonials, limited
func (r *Repository) ListActive(ctx context.Context, limit int) ([]*domain.Testimonial, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"text",
		"rating",
		"is_active",
		"created_at",
	).
		From("testimonials").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	testimonials := make([]*domain.Testimonial, 0)
	for rows.Next() {
		var (
			t         domain.Testimonial
			createdAt sql.NullTime
		)
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Text,
			&t.Rating,
			&t.IsActive,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %w", ErrScanRow, err)
		}
		t.CreatedAt = createdAt.Time
		testimonials = append(testimonials, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %w", ErrScanRow, err)
	}

	return testimonials, nil
}

// ListAll returns every testimonial, newest first. The admin moderation
// queue reads pending submissions through this view.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Testimonial, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"text",
		"rating",
		"is_active",
		"created_at",
	).
		From("testimonials").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	testimonials := make([]*domain.Testimonial, 0)
	for rows.Next() {
		var (
			t         domain.Testimonial
			createdAt sql.NullTime
		)
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Text,
			&t.Rating,
			&t.IsActive,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %w", ErrScanRow, err)
		}
		t.CreatedAt = createdAt.Time
		testimonials = append(testimonials, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %w", ErrScanRow, err)
	}

	return testimonials, nil
}

// SetActive flips a testimonial's visibility on the landing page
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("testimonials").
		Set("is_active", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTestimonialNotFound
	}

	return nil
}

// Delete removes a testimonial
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("testimonials").
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
		return ErrTestimonialNotFound
	}

	return nil
}
