package list_menu

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xalexyi/prenotazioni-ai/internal/api/handlers"
)

const msgInvalidRestaurantID = "bad_restaurant_id"

type Handler struct {
	service MenuService
	logger  Logger
}

func NewHandler(service MenuService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/menu
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/menu - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	menu, err := h.service.List(r.Context(), restaurantID)
	if err != nil {
		h.logger.Error("GET /restaurants/{id}/menu - Failed: restaurant_id=%d, error=%v", restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, menu)
}
