package create_menu_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xalexyi/prenotazioni-ai/internal/api/handlers"
	"github.com/xalexyi/prenotazioni-ai/internal/service/menu"
	"github.com/xalexyi/prenotazioni-ai/internal/service/menu/models"
)

const (
	msgInvalidRestaurantID = "bad_restaurant_id"
	msgInvalidRequestBody  = "bad_request_body"
	msgInvalidItem         = "invalid_item"
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

// CreateItemRequest HTTP request model
type CreateItemRequest struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Available *bool   `json:"available,omitempty"`
}

// Handle POST /api/v1/restaurants/{restaurantId}/menu
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/menu - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req CreateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/menu - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.CreateItem(r.Context(), &models.CreateItemRequest{
		RestaurantID: restaurantID,
		Name:         req.Name,
		PriceEuros:   req.Price,
		Category:     req.Category,
		Available:    req.Available,
	})
	if err != nil {
		if errors.Is(err, menu.ErrInvalidItem) {
			handlers.RespondBadRequest(w, msgInvalidItem)
			return
		}
		h.logger.Error("POST /restaurants/{id}/menu - Failed: restaurant_id=%d, error=%v", restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /restaurants/{id}/menu - Created: restaurant_id=%d, item_id=%d", restaurantID, item.ID)
	handlers.RespondJSON(w, http.StatusCreated, item)
}
