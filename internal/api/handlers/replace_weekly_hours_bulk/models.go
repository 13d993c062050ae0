package replace_weekly_hours_bulk

import (
	"strconv"

	"github.com/xalexyi/prenotazioni-ai/internal/service/schedule/models"
)

// ReplaceWeeklyBulkRequest HTTP request model.
// Ключи week - weekday "0".."6"; отсутствующий день закрывается.
type ReplaceWeeklyBulkRequest struct {
	Week map[string][]WindowInput `json:"week"`
}

type WindowInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса.
// Нечисловой ключ дня возвращается как weekday = -1, чтобы валидация
// сервиса отбила его как bad weekday.
func (r *ReplaceWeeklyBulkRequest) ToServiceRequest(restaurantID int64) *models.ReplaceWeeklyBulkRequest {
	week := make(map[int][]models.WindowInput, len(r.Week))
	for key, inputs := range r.Week {
		weekday, err := strconv.Atoi(key)
		if err != nil {
			weekday = -1
		}
		windows := make([]models.WindowInput, 0, len(inputs))
		for _, w := range inputs {
			windows = append(windows, models.WindowInput{Start: w.Start, End: w.End})
		}
		week[weekday] = windows
	}
	return &models.ReplaceWeeklyBulkRequest{
		RestaurantID: restaurantID,
		Week:         week,
	}
}
