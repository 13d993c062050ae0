package delete_menu_item

import "context"

type MenuService interface {
	DeleteItem(ctx context.Context, restaurantID, itemID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
