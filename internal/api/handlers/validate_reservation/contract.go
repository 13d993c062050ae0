package validate_reservation

import (
	"context"

	"github.com/xalexyi/prenotazioni-ai/internal/usecase/validate_reservation"
)

type ValidateUseCase interface {
	Validate(ctx context.Context, req validate_reservation.Request) (validate_reservation.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
