package upsert_special_day

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
	msgInvalidDate         = "invalid_date"
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

// Handle PUT /api/v1/restaurants/{restaurantId}/special-days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /restaurants/{id}/special-days/{date} - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req UpsertSpecialDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /restaurants/{id}/special-days/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date := vars["date"]
	err = h.service.UpsertSpecialDay(r.Context(), req.ToServiceRequest(restaurantID, date))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, schedule.ErrInvalidTimeFormat):
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("PUT /restaurants/{id}/special-days/{date} - Failed: restaurant_id=%d, date=%s, error=%v",
				restaurantID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /restaurants/{id}/special-days/{date} - Upserted: restaurant_id=%d, date=%s, closed=%t",
		restaurantID, date, req.IsClosed)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
