package schedule

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда у ресторана нет строки настроек
	ErrSettingsNotFound = errors.New("schedule.repository: settings not found")

	// ErrSpecialDayNotFound возвращается при удалении несуществующего override'а
	ErrSpecialDayNotFound = errors.New("schedule.repository: special day not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
