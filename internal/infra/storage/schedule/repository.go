package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/pkg/psqlbuilder"
	"github.com/xalexyi/prenotazioni-ai/pkg/txmanager"
	"github.com/xalexyi/prenotazioni-ai/pkg/types"
)

// Repository репозиторий расписания: недельные окна, особые дни, настройки.
// Операции Replace*/Upsert* выполняют delete+insert и рассчитаны на вызов
// внутри транзакции (executor берется из контекста).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklyWindows возвращает все окна недельного расписания ресторана,
// упорядоченные по weekday и времени начала
func (r *Repository) GetWeeklyWindows(ctx context.Context, restaurantID int64) ([]*domain.WeeklyWindow, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"weekday",
		"start_time",
		"end_time",
	).
		From("opening_hours").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("weekday ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.WeeklyWindow, 0)
	for rows.Next() {
		var w domain.WeeklyWindow
		if err := rows.Scan(&w.ID, &w.RestaurantID, &w.Weekday, &w.Start, &w.End); err != nil {
			return nil, fmt.Errorf("%w: GetWeeklyWindows - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// ReplaceWeeklyWindows заменяет окна одного weekday: delete + insert.
// Пустой список = ресторан закрыт в этот день (ни одной строки).
func (r *Repository) ReplaceWeeklyWindows(ctx context.Context, restaurantID int64, weekday int, windows []domain.Window) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	delQuery, delArgs, err := psqlbuilder.Delete("opening_hours").
		Where(squirrel.Eq{"restaurant_id": restaurantID, "weekday": weekday}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyWindows - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyWindows - execute delete: %v", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("opening_hours").
		Columns("restaurant_id", "weekday", "start_time", "end_time")
	for _, w := range windows {
		insertBuilder = insertBuilder.Values(restaurantID, weekday, w.Start, w.End)
	}

	insQuery, insArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyWindows - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insQuery, insArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyWindows - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetSpecialDayRows возвращает все строки особых дней ресторана,
// упорядоченные по дате и времени начала
func (r *Repository) GetSpecialDayRows(ctx context.Context, restaurantID int64) ([]*domain.SpecialDayRow, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"date",
		"is_closed",
		"start_time",
		"end_time",
	).
		From("special_days").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("date ASC, start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDayRows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDayRows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.SpecialDayRow, 0)
	for rows.Next() {
		var row domain.SpecialDayRow
		var start, end sql.NullString
		if err := rows.Scan(&row.ID, &row.RestaurantID, &row.Date, &row.IsClosed, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetSpecialDayRows - scan row: %v", ErrScanRow, err)
		}
		if start.Valid {
			s := types.TimeString(start.String)
			row.Start = &s
		}
		if end.Valid {
			e := types.TimeString(end.String)
			row.End = &e
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDayRows - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpsertSpecialDay заменяет override на дату: delete + insert.
// closed=true пишет одну строку-маркер, иначе по строке на окно.
func (r *Repository) UpsertSpecialDay(ctx context.Context, restaurantID int64, date types.DateString, closed bool, windows []domain.Window) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	delQuery, delArgs, err := psqlbuilder.Delete("special_days").
		Where(squirrel.Eq{"restaurant_id": restaurantID, "date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertSpecialDay - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("%w: UpsertSpecialDay - execute delete: %v", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert("special_days").
		Columns("restaurant_id", "date", "is_closed", "start_time", "end_time")

	if closed {
		insertBuilder = insertBuilder.Values(restaurantID, date, true, nil, nil)
	} else {
		for _, w := range windows {
			insertBuilder = insertBuilder.Values(restaurantID, date, false, w.Start, w.End)
		}
	}

	insQuery, insArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertSpecialDay - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insQuery, insArgs...); err != nil {
		return fmt.Errorf("%w: UpsertSpecialDay - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteSpecialDay удаляет override на дату
func (r *Repository) DeleteSpecialDay(ctx context.Context, restaurantID int64, date types.DateString) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("special_days").
		Where(squirrel.Eq{"restaurant_id": restaurantID, "date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialDay - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialDay - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialDay - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSpecialDayNotFound
	}

	return nil
}

// GetSettings возвращает настройки ресторана.
// Отсутствие строки - ErrSettingsNotFound, дефолты подставляет caller.
func (r *Repository) GetSettings(ctx context.Context, restaurantID int64) (*domain.Settings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"restaurant_id",
		"tz",
		"slot_step_min",
		"last_order_min",
		"min_party",
		"max_party",
		"capacity_per_slot",
	).
		From("restaurant_settings").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Settings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.RestaurantID,
		&s.Timezone,
		&s.SlotStepMin,
		&s.LastOrderMin,
		&s.MinParty,
		&s.MaxParty,
		&s.CapacityPerSlot,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - scan settings: %v", ErrScanRow, err)
	}

	return &s, nil
}

// UpsertSettings пишет полную строку настроек (insert или update).
// Частичное слияние с текущими значениями делает сервисный слой.
func (r *Repository) UpsertSettings(ctx context.Context, s *domain.Settings) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("restaurant_settings").
		Columns(
			"restaurant_id",
			"tz",
			"slot_step_min",
			"last_order_min",
			"min_party",
			"max_party",
			"capacity_per_slot",
		).
		Values(
			s.RestaurantID,
			s.Timezone,
			s.SlotStepMin,
			s.LastOrderMin,
			s.MinParty,
			s.MaxParty,
			s.CapacityPerSlot,
		).
		Suffix(`ON CONFLICT (restaurant_id) DO UPDATE SET
			tz = EXCLUDED.tz,
			slot_step_min = EXCLUDED.slot_step_min,
			last_order_min = EXCLUDED.last_order_min,
			min_party = EXCLUDED.min_party,
			max_party = EXCLUDED.max_party,
			capacity_per_slot = EXCLUDED.capacity_per_slot`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertSettings - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertSettings - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
