package menu

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/pkg/psqlbuilder"
	"github.com/xalexyi/prenotazioni-ai/pkg/txmanager"
)

// Repository репозиторий цифрового меню
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория меню
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает позиции меню ресторана, сгруппированные по категории
func (r *Repository) List(ctx context.Context, restaurantID int64) ([]*domain.MenuItem, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"restaurant_id",
		"name",
		"price_cents",
		"category",
		"available",
	).
		From("menu_items").
		Where(squirrel.Eq{"restaurant_id": restaurantID}).
		OrderBy("category ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.MenuItem, 0)
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.PriceCents, &item.Category, &item.Available); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// Create вставляет позицию меню и возвращает её ID
func (r *Repository) Create(ctx context.Context, item *domain.MenuItem) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("menu_items").
		Columns("restaurant_id", "name", "price_cents", "category", "available").
		Values(item.RestaurantID, item.Name, item.PriceCents, item.Category, item.Available).
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

// Delete удаляет позицию меню
func (r *Repository) Delete(ctx context.Context, restaurantID, itemID int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("menu_items").
		Where(squirrel.Eq{"restaurant_id": restaurantID, "id": itemID}).
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
		return ErrMenuItemNotFound
	}

	return nil
}
