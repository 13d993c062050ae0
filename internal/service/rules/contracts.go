package rules

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
)

// ScheduleRepository интерфейс хранилища правил расписания
type ScheduleRepository interface {
	GetWeeklyWindows(ctx context.Context, restaurantID int64) ([]*domain.WeeklyWindow, error)
	GetSpecialDayRows(ctx context.Context, restaurantID int64) ([]*domain.SpecialDayRow, error)
	GetSettings(ctx context.Context, restaurantID int64) (*domain.Settings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
