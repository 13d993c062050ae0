package create_reservation

import (
	"context"
	"fmt"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/internal/usecase/validate_reservation"
	"github.com/xalexyi/prenotazioni-ai/pkg/types"
)

// UseCase создание брони с обязательной проверкой допустимости.
// Бронь никогда не пишется мимо движка проверки: и ручные, и голосовые
// брони идут через один и тот же конвейер.
type UseCase struct {
	rulesLoader     RulesLoader
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rulesLoader RulesLoader,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		rulesLoader:     rulesLoader,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Create проверяет кандидата движком и при допустимости пишет бронь
func (uc *UseCase) Create(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	rules, err := uc.rulesLoader.Load(ctx, req.RestaurantID)
	if err != nil {
		uc.logger.Error("create_reservation: failed to load rules for restaurant %d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: Create - load rules: %v", ErrCreateReservation, err)
	}

	verdict := validate_reservation.Evaluate(rules, req.Date, req.Time, req.PartySize)
	if !verdict.Ok {
		uc.logger.Info("create_reservation: restaurant=%d date=%s time=%s rejected code=%s",
			req.RestaurantID, req.Date, req.Time, verdict.ErrorCode)
		return &Response{Rejection: &Rejection{
			ErrorCode: verdict.ErrorCode,
			Reason:    verdict.Reason,
			Suggested: verdict.Suggested,
		}}, nil
	}

	reservation := &domain.Reservation{
		RestaurantID:  req.RestaurantID,
		Date:          types.DateString(req.Date),
		Time:          types.TimeString(req.Time),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		PartySize:     req.PartySize,
		Status:        domain.StatusPending,
		Notes:         req.Notes,
		Source:        req.Source,
	}

	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := uc.reservationRepo.Create(ctx, reservation)
		if err != nil {
			return err
		}
		stored, err := uc.reservationRepo.GetByID(ctx, req.RestaurantID, id)
		if err != nil {
			return err
		}
		reservation = stored
		return nil
	})
	if err != nil {
		uc.logger.Error("create_reservation: failed to insert reservation for restaurant %d: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: Create - insert: %v", ErrCreateReservation, err)
	}

	uc.logger.Info("create_reservation: restaurant=%d created reservation id=%d for %s %s party=%d source=%s",
		req.RestaurantID, reservation.ID, req.Date, req.Time, req.PartySize, req.Source)

	return &Response{Reservation: reservation}, nil
}
