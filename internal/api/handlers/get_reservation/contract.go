package get_reservation

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/service/reservations/models"
)

type ReservationsService interface {
	Get(ctx context.Context, restaurantID, reservationID int64) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
