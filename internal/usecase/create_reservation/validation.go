package create_reservation

import (
	"fmt"
	"strings"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
)

// validateRequest проверяет форму запроса до обращения к правилам.
// Допустимость даты/времени/размера компании проверяет движок.
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name longer than %d chars", ErrInvalidInput, domain.MaxCustomerNameLength)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d chars", ErrInvalidInput, domain.MaxNotesLength)
	}
	switch req.Source {
	case domain.SourceManual, domain.SourceVoice:
	case "":
		req.Source = domain.SourceManual
	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	req.CustomerName = name
	return nil
}
