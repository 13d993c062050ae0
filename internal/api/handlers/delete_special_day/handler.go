package delete_special_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xalexyi/prenotazioni-ai/internal/api/handlers"
	"github.com/xalexyi/prenotazioni-ai/internal/service/schedule"
)

const (
	msgInvalidRestaurantID = "bad_restaurant_id"
	msgInvalidDate         = "invalid_date"
	msgNotFound            = "special_day_not_found"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/restaurants/{restaurantId}/special-days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /restaurants/{id}/special-days/{date} - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	date := vars["date"]
	err = h.service.DeleteSpecialDay(r.Context(), restaurantID, date)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, schedule.ErrSpecialDayNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /restaurants/{id}/special-days/{date} - Failed: restaurant_id=%d, date=%s, error=%v",
				restaurantID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /restaurants/{id}/special-days/{date} - Deleted: restaurant_id=%d, date=%s", restaurantID, date)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
