package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/fisiovita/clinic-booking/internal/domain"
	"github.com/fisiovita/clinic-booking/pkg/dbmetrics"
	"github.com/fisiovita/clinic-booking/pkg/psqlbuilder"
	"github.com/fisiovita/clinic-booking/pkg/types"
)

// Repository stores booking requests submitted through the public site
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking request repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking request. If the context carries an active
// transaction (via dbmetrics.WithTx) the insert joins it, which is how the
// admission flow keeps the capacity check and the insert atomic.
func (r *Repository) Create(ctx context.Context, booking *domain.BookingRequest) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_requests").
		Columns(
			"name",
			"email",
			"phone",
			"preferred_date",
			"preferred_time",
			"service_type",
			"notes",
			"status",
			"ip_address",
		).
		Values(
			booking.Name,
			booking.Email,
			booking.Phone,
			booking.PreferredDate,
			booking.PreferredTime,
			booking.ServiceType,
			booking.Notes,
			booking.Status,
			booking.IPAddress,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// CountByDateRange aggregates capacity-consuming bookings per (date, time)
// pair for preferred_date between from and to inclusive. Rows without a
// preferred time are legacy data and are excluded. Read-only: concurrency
// is handled at the admission step, not here.
func (r *Repository) CountByDateRange(ctx context.Context, from, to time.Time) ([]domain.SlotUsage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(domain.CapacityConsumingStatuses))
	for i, s := range domain.CapacityConsumingStatuses {
		statusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"preferred_date",
		"preferred_time",
		"COUNT(*) AS booked",
	).
		From("booking_requests").
		Where(squirrel.GtOrEq{"preferred_date": from}).
		Where(squirrel.LtOrEq{"preferred_date": to}).
		Where(squirrel.Eq{"status": statusStrings}).
		Where(squirrel.NotEq{"preferred_time": nil}).
		GroupBy("preferred_date", "preferred_time").
		OrderBy("preferred_date ASC, preferred_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByDateRange - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByDateRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	usage := make([]domain.SlotUsage, 0)
	for rows.Next() {
		var (
			date   time.Time
			slot   types.TimeString
			booked int
		)
		if err := rows.Scan(&date, &slot, &booked); err != nil {
			return nil, fmt.Errorf("%w: CountByDateRange - scan row: %w", ErrScanRow, err)
		}
		usage = append(usage, domain.SlotUsage{
			Date:   date.Format(domain.DateFormat),
			Time:   slot,
			Booked: booked,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByDateRange - rows error: %w", ErrScanRow, err)
	}

	return usage, nil
}

// GetForSlot returns the capacity-consuming bookings targeting one
// (date, time) slot. When called inside a transaction the matching rows are
// locked with FOR UPDATE, so a concurrent admission for the same slot blocks
// until this transaction commits. This is the fresh read the admission flow
// relies on instead of a stale availability snapshot.
func (r *Repository) GetForSlot(ctx context.Context, date time.Time, slot types.TimeString) ([]*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(domain.CapacityConsumingStatuses))
	for i, s := range domain.CapacityConsumingStatuses {
		statusStrings[i] = string(s)
	}

	selectBuilder := selectBookingColumns().
		Where(squirrel.Eq{"preferred_date": date}).
		Where(squirrel.Eq{"preferred_time": slot}).
		Where(squirrel.Eq{"status": statusStrings}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForSlot - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForSlot - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByID returns a booking request by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookingColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// ListWithFilter returns booking requests for the admin dashboard,
// optionally filtered by date range and status. Newest first.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectBookingColumns()

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"preferred_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"preferred_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	selectBuilder = selectBuilder.OrderBy("preferred_date DESC, preferred_time DESC, id DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus moves a booking request to the given status
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_requests").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func selectBookingColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"email",
		"phone",
		"preferred_date",
		"preferred_time",
		"service_type",
		"notes",
		"status",
		"ip_address",
		"created_at",
	).From("booking_requests")
}

func scanBookings(rows *sql.Rows) ([]*domain.BookingRequest, error) {
	bookings := make([]*domain.BookingRequest, 0)

	for rows.Next() {
		var (
			booking       domain.BookingRequest
			preferredTime sql.NullString
			createdAt     sql.NullTime
		)

		err := rows.Scan(
			&booking.ID,
			&booking.Name,
			&booking.Email,
			&booking.Phone,
			&booking.PreferredDate,
			&preferredTime,
			&booking.ServiceType,
			&booking.Notes,
			&booking.Status,
			&booking.IPAddress,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}

		if preferredTime.Valid {
			var slot types.TimeString
			if err := slot.Scan(preferredTime.String); err != nil {
				return nil, fmt.Errorf("%w: scanBookings - scan preferred_time: %w", ErrScanRow, err)
			}
			booking.PreferredTime = &slot
		}
		booking.CreatedAt = createdAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
