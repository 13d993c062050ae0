package update_settings

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
	msgInvalidSettings     = "invalid_settings"
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

// Handle PATCH /api/v1/restaurants/{restaurantId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /restaurants/{id}/settings - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /restaurants/{id}/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), req.ToServiceRequest(restaurantID))
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidSettings) {
			handlers.RespondBadRequest(w, msgInvalidSettings)
			return
		}
		h.logger.Error("PATCH /restaurants/{id}/settings - Failed: restaurant_id=%d, error=%v", restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /restaurants/{id}/settings - Updated: restaurant_id=%d", restaurantID)
	handlers.RespondJSON(w, http.StatusOK, settings)
}
