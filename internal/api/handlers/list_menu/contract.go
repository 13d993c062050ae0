package list_menu

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/service/menu/models"
)

type MenuService interface {
	List(ctx context.Context, restaurantID int64) (*models.MenuResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
