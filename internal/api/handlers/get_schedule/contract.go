package get_schedule

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/service/schedule/models"
)

type ScheduleService interface {
	State(ctx context.Context, restaurantID int64) (*models.StateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
