package upsert_special_day

import "github.com/xalexyi/prenotazioni-ai/internal/service/schedule/models"

// UpsertSpecialDayRequest HTTP request model
type UpsertSpecialDayRequest struct {
	IsClosed bool          `json:"is_closed"`
	Windows  []WindowInput `json:"windows,omitempty"`
}

type WindowInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpsertSpecialDayRequest) ToServiceRequest(restaurantID int64, date string) *models.UpsertSpecialDayRequest {
	windows := make([]models.WindowInput, 0, len(r.Windows))
	for _, w := range r.Windows {
		windows = append(windows, models.WindowInput{Start: w.Start, End: w.End})
	}
	return &models.UpsertSpecialDayRequest{
		RestaurantID: restaurantID,
		Date:         date,
		IsClosed:     r.IsClosed,
		Windows:      windows,
	}
}
