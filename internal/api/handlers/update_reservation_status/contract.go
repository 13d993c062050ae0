package update_reservation_status

import "context"

type ReservationsService interface {
	UpdateStatus(ctx context.Context, restaurantID, reservationID int64, status string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
