package create_reservation

import (
	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	createUC "github.com/xalexyi/prenotazioni-ai/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	PartySize     int     `json:"party_size"`
	Notes         *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(restaurantID int64) createUC.Request {
	return createUC.Request{
		RestaurantID:  restaurantID,
		Date:          r.Date,
		Time:          r.Time,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		PartySize:     r.PartySize,
		Notes:         r.Notes,
		Source:        domain.SourceManual,
	}
}

// CreateReservationResponse успешный ответ
type CreateReservationResponse struct {
	Ok          bool               `json:"ok"`
	Reservation *ReservationModel  `json:"reservation,omitempty"`
	Error       string             `json:"error,omitempty"`
	Reason      string             `json:"reason,omitempty"`
	Suggested   string             `json:"suggested,omitempty"`
}

// ReservationModel бронь в ответе API
type ReservationModel struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"party_size"`
	Status    string `json:"status"`
}
