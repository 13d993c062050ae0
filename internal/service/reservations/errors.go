package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservations.service: reservation not found")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("reservations.service: invalid status")

	// ErrReservationCancelled возвращается при попытке сменить статус
	// отмененной брони
	ErrReservationCancelled = errors.New("reservations.service: reservation already cancelled")

	// ErrInvalidFilter возвращается при невалидных параметрах фильтра
	ErrInvalidFilter = errors.New("reservations.service: invalid filter")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("reservations.service: internal error")
)
