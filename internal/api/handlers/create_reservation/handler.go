package create_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xalexyi/prenotazioni-ai/internal/api/handlers"
	createUC "github.com/xalexyi/prenotazioni-ai/internal/usecase/create_reservation"
)

const (
	msgInvalidRestaurantID = "bad_restaurant_id"
	msgInvalidRequestBody  = "bad_request_body"
	msgInvalidInput        = "invalid_input"
)

type Handler struct {
	usecase CreateUseCase
	logger  Logger
}

func NewHandler(usecase CreateUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/restaurants/{restaurantId}/reservations
// Отказ движка проверки отдается как 200 с ok=false и кодом отказа:
// запрос корректен, недопустим сам слот.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /restaurants/{id}/reservations - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /restaurants/{id}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.usecase.Create(r.Context(), req.ToUseCaseRequest(restaurantID))
	if err != nil {
		if errors.Is(err, createUC.ErrInvalidInput) {
			h.logger.Warn("POST /restaurants/{id}/reservations - Invalid input: restaurant_id=%d, error=%v", restaurantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /restaurants/{id}/reservations - Failed: restaurant_id=%d, error=%v", restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	if resp.Rejection != nil {
		handlers.RespondJSON(w, http.StatusOK, CreateReservationResponse{
			Ok:        false,
			Error:     resp.Rejection.ErrorCode,
			Reason:    resp.Rejection.Reason,
			Suggested: resp.Rejection.Suggested,
		})
		return
	}

	h.logger.Info("POST /restaurants/{id}/reservations - Created: restaurant_id=%d, reservation_id=%d",
		restaurantID, resp.Reservation.ID)
	handlers.RespondJSON(w, http.StatusCreated, CreateReservationResponse{
		Ok: true,
		Reservation: &ReservationModel{
			ID:        resp.Reservation.ID,
			Date:      resp.Reservation.Date.String(),
			Time:      resp.Reservation.Time.String(),
			PartySize: resp.Reservation.PartySize,
			Status:    string(resp.Reservation.Status),
		},
	})
}
