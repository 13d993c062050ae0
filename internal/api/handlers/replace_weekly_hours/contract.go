package replace_weekly_hours

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceWeekly(ctx context.Context, req *models.ReplaceWeeklyRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
