package delete_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xalexyi/prenotazioni-ai/internal/api/handlers"
	"github.com/xalexyi/prenotazioni-ai/internal/service/reservations"
)

const (
	msgInvalidRestaurantID  = "bad_restaurant_id"
	msgInvalidReservationID = "bad_reservation_id"
	msgNotFound             = "reservation_not_found"
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

// Handle DELETE /api/v1/restaurants/{restaurantId}/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /restaurants/{id}/reservations/{rid} - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /restaurants/{id}/reservations/{rid} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	err = h.service.Delete(r.Context(), restaurantID, reservationID)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /restaurants/{id}/reservations/{rid} - Failed: restaurant_id=%d, reservation_id=%d, error=%v",
			restaurantID, reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /restaurants/{id}/reservations/{rid} - Deleted: restaurant_id=%d, reservation_id=%d",
		restaurantID, reservationID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
