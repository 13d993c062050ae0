package reservations

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, restaurantID, reservationID int64) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, restaurantID, reservationID int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, restaurantID, reservationID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
