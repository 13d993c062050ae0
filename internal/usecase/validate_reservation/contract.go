package validate_reservation

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
)

// RulesLoader интерфейс загрузчика действующих правил ресторана
type RulesLoader interface {
	Load(ctx context.Context, restaurantID int64) (*domain.EffectiveRules, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
