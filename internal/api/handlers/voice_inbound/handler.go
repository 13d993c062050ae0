package voice_inbound

import (
	"errors"
	"net/http"

	"github.com/xalexyi/prenotazioni-ai/internal/api/handlers"
	"github.com/xalexyi/prenotazioni-ai/internal/service/voice"
	"github.com/xalexyi/prenotazioni-ai/internal/service/voice/models"
)

const (
	msgInvalidRequestBody = "bad_request_body"
	msgMissingFields      = "missing_fields"
	msgLineBusy           = "line_busy"
	msgUnparsable         = "unparsable_transcript"
)

type Handler struct {
	service VoiceService
	logger  Logger
}

func NewHandler(service VoiceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/voice/inbound
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.InboundRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /voice/inbound - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.RestaurantID == 0 || req.CallID == "" {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	resp, err := h.service.HandleInbound(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, voice.ErrLineBusy):
			handlers.RespondTooManyRequests(w, msgLineBusy)

		case errors.Is(err, voice.ErrUnparsable):
			handlers.RespondBadRequest(w, msgUnparsable)

		default:
			h.logger.Error("POST /voice/inbound - Failed: restaurant_id=%d, call_id=%s, error=%v",
				req.RestaurantID, req.CallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if resp.Rejection != nil {
		status = http.StatusOK
	}
	handlers.RespondJSON(w, status, resp)
}
