package schedule

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/pkg/types"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetWeeklyWindows(ctx context.Context, restaurantID int64) ([]*domain.WeeklyWindow, error)
	ReplaceWeeklyWindows(ctx context.Context, restaurantID int64, weekday int, windows []domain.Window) error
	GetSpecialDayRows(ctx context.Context, restaurantID int64) ([]*domain.SpecialDayRow, error)
	UpsertSpecialDay(ctx context.Context, restaurantID int64, date types.DateString, closed bool, windows []domain.Window) error
	DeleteSpecialDay(ctx context.Context, restaurantID int64, date types.DateString) error
	GetSettings(ctx context.Context, restaurantID int64) (*domain.Settings, error)
	UpsertSettings(ctx context.Context, settings *domain.Settings) error
}

// TransactionManager интерфейс для управления транзакциями.
// Замены расписания идут через сериализуемые транзакции: delete+insert
// одного scope не должны перемежаться между конкурентными запросами.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
