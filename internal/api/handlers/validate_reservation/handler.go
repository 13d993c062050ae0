package validate_reservation

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xalexyi/prenotazioni-ai/internal/api/handlers"
	validateUC "github.com/xalexyi/prenotazioni-ai/internal/usecase/validate_reservation"
)

const (
	msgInvalidRestaurantID = "bad_restaurant_id"
	msgInvalidPartySize    = "bad_party_size"
)

type Handler struct {
	usecase ValidateUseCase
	logger  Logger
}

func NewHandler(usecase ValidateUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/restaurants/{restaurantId}/validate?date=&time=&party_size=
// Отказ движка - это ответ 200 с ok=false: проверка отработала штатно,
// недопустим сам кандидат.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.ParseInt(vars["restaurantId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/validate - Invalid restaurant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRestaurantID)
		return
	}

	query := r.URL.Query()
	partySize, err := strconv.Atoi(query.Get("party_size"))
	if err != nil {
		h.logger.Warn("GET /restaurants/{id}/validate - Invalid party size %q", query.Get("party_size"))
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	result, err := h.usecase.Validate(r.Context(), validateUC.Request{
		RestaurantID: restaurantID,
		Date:         query.Get("date"),
		Time:         query.Get("time"),
		PartySize:    partySize,
	})
	if err != nil {
		h.logger.Error("GET /restaurants/{id}/validate - Failed: restaurant_id=%d, error=%v", restaurantID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ValidateResponse{
		Ok:        result.Ok,
		Error:     result.ErrorCode,
		Reason:    result.Reason,
		Suggested: result.Suggested,
	})
}
