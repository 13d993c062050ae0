package upsert_special_day

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertSpecialDay(ctx context.Context, req *models.UpsertSpecialDayRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
