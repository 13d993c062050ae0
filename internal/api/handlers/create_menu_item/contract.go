package create_menu_item

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/service/menu/models"
)

type MenuService interface {
	CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
