package replace_weekly_hours

import "github.com/xalexyi/prenotazioni-ai/internal/service/schedule/models"

// ReplaceWeeklyRequest HTTP request model.
// Пустой windows закрывает день.
type ReplaceWeeklyRequest struct {
	Windows []WindowInput `json:"windows"`
}

type WindowInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *ReplaceWeeklyRequest) ToServiceRequest(restaurantID int64, weekday int) *models.ReplaceWeeklyRequest {
	windows := make([]models.WindowInput, 0, len(r.Windows))
	for _, w := range r.Windows {
		windows = append(windows, models.WindowInput{Start: w.Start, End: w.End})
	}
	return &models.ReplaceWeeklyRequest{
		RestaurantID: restaurantID,
		Weekday:      weekday,
		Windows:      windows,
	}
}
