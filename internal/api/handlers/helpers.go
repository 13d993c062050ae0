package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse конверт ошибки API: {"ok": false, "error": "<code>"}
type ErrorResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error"`
}

// DecodeJSON декодирует тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("handlers: decode json: %w", err)
	}
	return nil
}

// RespondJSON пишет payload как JSON с заданным статусом.
// nil payload дает пустое тело.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет конверт ошибки с машинным кодом
func RespondError(w http.ResponseWriter, status int, code string) {
	RespondJSON(w, status, ErrorResponse{Ok: false, Error: code})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusBadRequest, code)
}

// RespondUnauthorized 401
func RespondUnauthorized(w http.ResponseWriter) {
	RespondError(w, http.StatusUnauthorized, "unauthorized")
}

// RespondForbidden 403
func RespondForbidden(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusForbidden, code)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusNotFound, code)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusConflict, code)
}

// RespondTooManyRequests 429
func RespondTooManyRequests(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusTooManyRequests, code)
}

// RespondInternalError 500
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "internal_error")
}
