package create_reservation

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
)

// RulesLoader интерфейс загрузчика действующих правил ресторана
type RulesLoader interface {
	Load(ctx context.Context, restaurantID int64) (*domain.EffectiveRules, error)
}

// ReservationRepository интерфейс хранилища броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (int64, error)
	GetByID(ctx context.Context, restaurantID, reservationID int64) (*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
