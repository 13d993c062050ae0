package delete_reservation

import "context"

type ReservationsService interface {
	Delete(ctx context.Context, restaurantID, reservationID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
