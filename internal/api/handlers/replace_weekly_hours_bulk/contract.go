package replace_weekly_hours_bulk

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceWeeklyBulk(ctx context.Context, req *models.ReplaceWeeklyBulkRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
