package voice_inbound

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/service/voice/models"
)

type VoiceService interface {
	HandleInbound(ctx context.Context, req *models.InboundRequest) (*models.InboundResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
