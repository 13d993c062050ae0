package list_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xalexyi/prenotazioni-ai/internal/api/handlers"
	"github.com/xalexyi/prenotazioni-ai/internal/service/reservations"
	"github.com/xalexyi/prenotazioni-ai/internal/service/reservations/models"
)

const (
	msgInvalidRestaurantID = "bad_restaurant_id"
	msgInvalidFilter       = "bad_filter"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/reservations?date=&since=&q=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/reservations - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	query := r.URL.Query()
	req := &models.ListRequest{
		RestaurantID: restaurantID,
		Date:         query.Get("date"),
		SinceDate:    query.Get("since"),
		Query:        query.Get("q"),
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.Limit = limit
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidFilter) {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /restaurants/{id}/reservations - Failed: restaurant_id=%d, error=%v", restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"reservations": list,
	})
}
