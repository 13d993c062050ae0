package menu

import "errors"

var (
	// ErrMenuItemNotFound возвращается, когда позиция меню не найдена
	ErrMenuItemNotFound = errors.New("menu.service: menu item not found")

	// ErrInvalidItem возвращается при невалидных полях позиции
	ErrInvalidItem = errors.New("menu.service: invalid menu item")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("menu.service: internal error")
)
