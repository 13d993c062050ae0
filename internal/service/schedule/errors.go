package schedule

import "errors"

var (
	// ErrInvalidTimeFormat возвращается при времени не в формате HH:MM
	ErrInvalidTimeFormat = errors.New("schedule.service: invalid time format")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("schedule.service: invalid date")

	// ErrInvalidWeekday возвращается при weekday вне диапазона 0-6
	ErrInvalidWeekday = errors.New("schedule.service: invalid weekday")

	// ErrInvalidSettings возвращается при значениях настроек вне допустимых границ
	ErrInvalidSettings = errors.New("schedule.service: invalid settings")

	// ErrSpecialDayNotFound возвращается при удалении несуществующего override'а
	ErrSpecialDayNotFound = errors.New("schedule.service: special day not found")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)
