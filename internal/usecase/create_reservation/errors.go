package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при невалидных полях запроса
	// (пустое имя, слишком длинные заметки и т.п.)
	ErrInvalidInput = errors.New("create_reservation.usecase: invalid input")

	// ErrCreateReservation возвращается при ошибке записи брони
	ErrCreateReservation = errors.New("create_reservation.usecase: failed to create reservation")
)
