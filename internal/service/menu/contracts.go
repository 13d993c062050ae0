package menu

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
)

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	List(ctx context.Context, restaurantID int64) ([]*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) (int64, error)
	Delete(ctx context.Context, restaurantID, itemID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
