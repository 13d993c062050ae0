package voice_active

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/service/voice/models"
)

type VoiceService interface {
	Active(ctx context.Context, restaurantID int64) (*models.ActiveResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
