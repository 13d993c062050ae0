package create_reservation

import "github.com/xalexyi/prenotazioni-ai/internal/domain"

// Request данные новой брони
type Request struct {
	RestaurantID  int64
	Date          string
	Time          string
	CustomerName  string
	CustomerPhone *string
	PartySize     int
	Notes         *string
	Source        domain.ReservationSource
}

// Response результат создания. Ровно одно из полей заполнено:
// Reservation при успехе, Rejection при отказе движка проверки.
type Response struct {
	Reservation *domain.Reservation
	Rejection   *Rejection
}

// Rejection вердикт движка проверки для недопустимой брони
type Rejection struct {
	ErrorCode string
	Reason    string
	Suggested string
}
