package menu

import "errors"

var (
	// ErrMenuItemNotFound возвращается, когда позиция меню не найдена
	ErrMenuItemNotFound = errors.New("menu.repository: menu item not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("menu.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("menu.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("menu.repository: failed to scan row")
)
