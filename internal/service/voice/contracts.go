package voice

import (
	"context"
	"time"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/internal/usecase/create_reservation"
)

// CallLimiter интерфейс ограничителя одновременных звонков
type CallLimiter interface {
	Acquire(ctx context.Context, restaurantID int64, callID string) (bool, error)
	Release(ctx context.Context, restaurantID int64, callID string) error
	Active(ctx context.Context, restaurantID int64) (int, error)
}

// RulesLoader интерфейс загрузчика правил (нужны настройки - таймзона)
type RulesLoader interface {
	Load(ctx context.Context, restaurantID int64) (*domain.EffectiveRules, error)
}

// ReservationCreator интерфейс создания брони через общий конвейер проверки
type ReservationCreator interface {
	Create(ctx context.Context, req create_reservation.Request) (*create_reservation.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
