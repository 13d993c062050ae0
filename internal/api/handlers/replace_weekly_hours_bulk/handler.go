package replace_weekly_hours_bulk

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
	msgInvalidRequestBody  = "bad_request_body"
	msgInvalidWeekday      = "bad_weekday"
	msgInvalidTime         = "invalid_time_format"
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

// Handle PUT /api/v1/restaurants/{restaurantId}/weekly-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /restaurants/{id}/weekly-hours - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req ReplaceWeeklyBulkRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /restaurants/{id}/weekly-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.ReplaceWeeklyBulk(r.Context(), req.ToServiceRequest(restaurantID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidWeekday):
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, schedule.ErrInvalidTimeFormat):
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("PUT /restaurants/{id}/weekly-hours - Failed: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /restaurants/{id}/weekly-hours - Replaced full week: restaurant_id=%d", restaurantID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
