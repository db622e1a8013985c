package message

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/fisiovita/clinic-booking/internal/domain"
	"github.com/fisiovita/clinic-booking/pkg/dbmetrics"
	"github.com/fisiovita/clinic-booking/pkg/psqlbuilder"
)

// Repository stores contact form messages
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a contact message repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a contact message and returns it with id and created_at set
func (r *Repository) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("messages").
		Columns("name", "email", "phone", "subject", "message", "ip_address").
		Values(msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message, msg.IPAddress).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	msg.CreatedAt = createdAt.Time

	return msg, nil
}

// List returns contact messages, newest first
func (r *Repository) List(ctx context.Context, onlyUnread bool) ([]*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"phone",
		"subject",
		"message",
		"is_read",
		"ip_address",
		"created_at",
	).
		From("messages").
		OrderBy("created_at DESC")

	if onlyUnread {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_read": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*domain.ContactMessage, 0)
	for rows.Next() {
		var (
			msg       domain.ContactMessage
			createdAt sql.NullTime
		)
		err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Phone,
			&msg.Subject,
			&msg.Message,
			&msg.IsRead,
			&msg.IPAddress,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		msg.CreatedAt = createdAt.Time
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return messages, nil
}

// MarkRead flags a message as read
func (r *Repository) MarkRead(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("messages").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrMessageNotFound
	}

	return nil
}

// Delete removes a contact message
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("messages").
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
		return ErrMessageNotFound
	}

	return nil
}
