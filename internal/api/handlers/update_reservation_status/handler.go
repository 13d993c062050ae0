package update_reservation_status

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
	msgInvalidRequestBody   = "bad_request_body"
	msgInvalidStatus        = "bad_status"
	msgNotFound             = "reservation_not_found"
	msgCancelled            = "reservation_cancelled"
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

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Handle PATCH /api/v1/restaurants/{restaurantId}/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /restaurants/{id}/reservations/{rid}/status - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /restaurants/{id}/reservations/{rid}/status - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /restaurants/{id}/reservations/{rid}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateStatus(r.Context(), restaurantID, reservationID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrReservationCancelled):
			handlers.RespondConflict(w, msgCancelled)

		default:
			h.logger.Error("PATCH /restaurants/{id}/reservations/{rid}/status - Failed: restaurant_id=%d, reservation_id=%d, error=%v",
				restaurantID, reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /restaurants/{id}/reservations/{rid}/status - Updated: restaurant_id=%d, reservation_id=%d, status=%s",
		restaurantID, reservationID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
