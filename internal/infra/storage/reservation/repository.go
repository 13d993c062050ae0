package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/pkg/psqlbuilder"
	"github.com/xalexyi/prenotazioni-ai/pkg/txmanager"
)

const defaultListLimit = 500

var reservationColumns = []string{
	"id",
	"restaurant_id",
	"date",
	"time",
	"customer_name",
	"customer_phone",
	"party_size",
	"status",
	"notes",
	"source",
	"created_at",
}

// Repository репозиторий броней
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет бронь и возвращает её ID
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"restaurant_id",
			"date",
			"time",
			"customer_name",
			"customer_phone",
			"party_size",
			"status",
			"notes",
			"source",
		).
		Values(
			res.RestaurantID,
			res.Date,
			res.Time,
			res.CustomerName,
			res.CustomerPhone,
			res.PartySize,
			res.Status,
			res.Notes,
			res.Source,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

// GetByID возвращает бронь ресторана по её ID
func (r *Repository) GetByID(ctx context.Context, restaurantID, reservationID int64) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"restaurant_id": restaurantID, "id": reservationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListWithFilter возвращает брони по фильтру, свежие даты сверху
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	builder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"restaurant_id": filter.RestaurantID}).
		OrderBy("date DESC, time ASC").
		Limit(limit)

	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"date": *filter.Date})
	}
	if filter.SinceDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": *filter.SinceDate})
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"customer_name": pattern},
			squirrel.ILike{"customer_phone": pattern},
			squirrel.ILike{"notes": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// UpdateStatus меняет статус брони
func (r *Repository) UpdateStatus(ctx context.Context, restaurantID, reservationID int64, status domain.ReservationStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Where(squirrel.Eq{"restaurant_id": restaurantID, "id": reservationID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронь
func (r *Repository) Delete(ctx context.Context, restaurantID, reservationID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"restaurant_id": restaurantID, "id": reservationID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ID,
		&res.RestaurantID,
		&res.Date,
		&res.Time,
		&res.CustomerName,
		&res.CustomerPhone,
		&res.PartySize,
		&res.Status,
		&res.Notes,
		&res.Source,
		&res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
