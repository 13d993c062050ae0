package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationRepo "github.com/xalexyi/prenotazioni-ai/internal/infra/storage/reservation"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/internal/service/reservations/models"
	"github.com/xalexyi/prenotazioni-ai/pkg/types"
)

// Service сервис для работы со списком броней
type Service struct {
	repo   ReservationRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(repo ReservationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает брони ресторана по фильтру
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]*models.ReservationResponse, error) {
	filter := domain.ReservationsFilter{
		RestaurantID: req.RestaurantID,
		Query:        req.Query,
		Limit:        req.Limit,
	}

	if req.Date != "" {
		date := types.DateString(req.Date)
		if err := date.Validate(); err != nil {
			return nil, fmt.Errorf("%w: bad date %q", ErrInvalidFilter, req.Date)
		}
		filter.Date = &date
	}
	if req.SinceDate != "" {
		since := types.DateString(req.SinceDate)
		if err := since.Validate(); err != nil {
			return nil, fmt.Errorf("%w: bad since date %q", ErrInvalidFilter, req.SinceDate)
		}
		filter.SinceDate = &since
	}

	list, err := s.repo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: restaurant=%d failed: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}

	result := make([]*models.ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, toResponse(r))
	}
	return result, nil
}

// Get возвращает одну бронь ресторана
func (s *Service) Get(ctx context.Context, restaurantID, reservationID int64) (*models.ReservationResponse, error) {
	r, err := s.repo.GetByID(ctx, restaurantID, reservationID)
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		s.logger.Error("Get: restaurant=%d reservation=%d failed: %v", restaurantID, reservationID, err)
		return nil, fmt.Errorf("%w: Get: %v", ErrInternal, err)
	}
	return toResponse(r), nil
}

// UpdateStatus меняет статус брони
func (s *Service) UpdateStatus(ctx context.Context, restaurantID, reservationID int64, status string) error {
	if !domain.ValidStatus(status) {
		s.logger.Warn("UpdateStatus: restaurant=%d reservation=%d unknown status %q", restaurantID, reservationID, status)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	stored, err := s.repo.GetByID(ctx, restaurantID, reservationID)
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		return ErrReservationNotFound
	}
	if err != nil {
		s.logger.Error("UpdateStatus: restaurant=%d reservation=%d failed: %v", restaurantID, reservationID, err)
		return fmt.Errorf("%w: UpdateStatus: %v", ErrInternal, err)
	}
	// отмена терминальна: статус отмененной брони заморожен
	if !stored.IsActive() {
		s.logger.Warn("UpdateStatus: restaurant=%d reservation=%d is cancelled, status frozen", restaurantID, reservationID)
		return fmt.Errorf("%w: reservation %d", ErrReservationCancelled, reservationID)
	}

	err = s.repo.UpdateStatus(ctx, restaurantID, reservationID, domain.ReservationStatus(status))
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		return ErrReservationNotFound
	}
	if err != nil {
		s.logger.Error("UpdateStatus: restaurant=%d reservation=%d failed: %v", restaurantID, reservationID, err)
		return fmt.Errorf("%w: UpdateStatus: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: restaurant=%d reservation=%d status=%s", restaurantID, reservationID, status)
	return nil
}

// Delete удаляет бронь
func (s *Service) Delete(ctx context.Context, restaurantID, reservationID int64) error {
	err := s.repo.Delete(ctx, restaurantID, reservationID)
	if errors.Is(err, reservationRepo.ErrReservationNotFound) {
		return ErrReservationNotFound
	}
	if err != nil {
		s.logger.Error("Delete: restaurant=%d reservation=%d failed: %v", restaurantID, reservationID, err)
		return fmt.Errorf("%w: Delete: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: restaurant=%d reservation=%d deleted", restaurantID, reservationID)
	return nil
}

func toResponse(r *domain.Reservation) *models.ReservationResponse {
	return &models.ReservationResponse{
		ID:            r.ID,
		RestaurantID:  r.RestaurantID,
		Date:          r.Date.String(),
		Time:          r.Time.String(),
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		PartySize:     r.PartySize,
		Status:        string(r.Status),
		Notes:         r.Notes,
		Source:        string(r.Source),
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
