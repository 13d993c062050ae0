package delete_menu_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xalexyi/prenotazioni-ai/internal/api/handlers"
	"github.com/xalexyi/prenotazioni-ai/internal/service/menu"
)

const (
	msgInvalidRestaurantID = "bad_restaurant_id"
	msgInvalidItemID       = "bad_item_id"
	msgNotFound            = "menu_item_not_found"
)

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

// Handle DELETE /api/v1/restaurants/{restaurantId}/menu/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /restaurants/{id}/menu/{itemId} - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /restaurants/{id}/menu/{itemId} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	err = h.service.DeleteItem(r.Context(), restaurantID, itemID)
	if err != nil {
		if errors.Is(err, menu.ErrMenuItemNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /restaurants/{id}/menu/{itemId} - Failed: restaurant_id=%d, item_id=%d, error=%v",
			restaurantID, itemID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /restaurants/{id}/menu/{itemId} - Deleted: restaurant_id=%d, item_id=%d", restaurantID, itemID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
