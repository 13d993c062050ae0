package validate_reservation

import (
	"context"
	"fmt"
)

// UseCase проверка допустимости брони
type UseCase struct {
	rulesLoader RulesLoader
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(rulesLoader RulesLoader, logger Logger) *UseCase {
	return &UseCase{
		rulesLoader: rulesLoader,
		logger:      logger,
	}
}

// Validate загружает свежий снимок правил и прогоняет кандидата через
// движок. Правила перечитываются на каждый вызов.
func (uc *UseCase) Validate(ctx context.Context, req Request) (Result, error) {
	rules, err := uc.rulesLoader.Load(ctx, req.RestaurantID)
	if err != nil {
		uc.logger.Error("validate_reservation: failed to load rules for restaurant %d: %v", req.RestaurantID, err)
		return Result{}, fmt.Errorf("%w: Validate - load rules: %v", ErrRulesUnavailable, err)
	}

	result := Evaluate(rules, req.Date, req.Time, req.PartySize)
	if !result.Ok {
		uc.logger.Info("validate_reservation: restaurant=%d date=%s time=%s party=%d rejected code=%s",
			req.RestaurantID, req.Date, req.Time, req.PartySize, result.ErrorCode)
	}

	return result, nil
}
