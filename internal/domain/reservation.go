package domain

import (
	"time"

	"github.com/xalexyi/prenotazioni-ai/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// ReservationSource источник создания брони
type ReservationSource string

const (
	SourceManual ReservationSource = "manual"
	SourceVoice  ReservationSource = "voice"
)

// Reservation represents a table reservation
type Reservation struct {
	ID            int64
	RestaurantID  int64
	Date          types.DateString
	Time          types.TimeString
	CustomerName  string
	CustomerPhone *string
	PartySize     int
	Status        ReservationStatus
	Notes         *string
	Source        ReservationSource

	CreatedAt time.Time
}

// IsActive returns true if the reservation still occupies a slot.
// Cancellation is terminal: the status of a cancelled reservation
// never changes again.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// ValidStatus проверяет, что строка - допустимый статус
func ValidStatus(s string) bool {
	switch ReservationStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// ReservationsFilter фильтр для списка броней ресторана
type ReservationsFilter struct {
	RestaurantID int64             // Обязательный параметр
	Date         *types.DateString // Конкретный день (опционально)
	SinceDate    *types.DateString // Нижняя граница даты (опционально)
	Query        string            // Поиск по имени/телефону/заметкам
	Limit        uint64            // 0 = дефолтный лимит репозитория
}
