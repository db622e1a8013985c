package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fisiovita/clinic-booking/pkg/dbmetrics"
	"github.com/fisiovita/clinic-booking/pkg/psqlbuilder"
)

// Repository reads and writes the site_settings key/value table
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a settings repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get returns the value stored for key, or ErrSettingNotFound
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("site_settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: Get - build select query: %w", ErrBuildQuery, err)
	}

	var value string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: Get - scan value: %w", ErrScanRow, err)
	}

	return value, nil
}

// GetByKeys returns the stored values for the given keys. Missing keys are
// simply absent from the result, the caller applies its own defaults.
func (r *Repository) GetByKeys(ctx context.Context, keys []string) (map[string]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("key", "value").
		From("site_settings").
		Where(squirrel.Eq{"key": keys}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByKeys - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKeys - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSettings(rows)
}

// GetAll returns every stored setting
func (r *Repository) GetAll(ctx context.Context) (map[string]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("key", "value").
		From("site_settings").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSettings(rows)
}

// Set upserts a single setting. Joins the transaction carried in ctx, if any.
func (r *Repository) Set(ctx context.Context, key, value string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("site_settings").
		Columns("key", "value", "updated_at").
		Values(key, value, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Set - build upsert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute upsert: %w", ErrExecQuery, err)
	}

	return nil
}

func scanSettings(rows *sql.Rows) (map[string]string, error) {
	settings := make(map[string]string)

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: scanSettings - scan row: %w", ErrScanRow, err)
		}
		settings[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSettings - rows error: %w", ErrScanRow, err)
	}

	return settings, nil
}
