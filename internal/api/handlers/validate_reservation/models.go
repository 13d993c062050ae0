package validate_reservation

// ValidateResponse вердикт проверки в формате публичного API.
// При ok=true остальные поля опущены.
type ValidateResponse struct {
	Ok        bool   `json:"ok"`
	Error     string `json:"error,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Suggested string `json:"suggested,omitempty"`
}
