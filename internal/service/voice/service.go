package voice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/internal/nlp"
	"github.com/xalexyi/prenotazioni-ai/internal/service/voice/models"
	"github.com/xalexyi/prenotazioni-ai/internal/usecase/create_reservation"
)

const anonymousCaller = "Cliente al telefono"

// Service голосовой прием броней: лимит линии, разбор фразы,
// создание брони через общий конвейер проверки.
type Service struct {
	limiter      CallLimiter
	rulesLoader  RulesLoader
	creator      ReservationCreator
	maxCalls     int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр голосового сервиса
func NewService(
	limiter CallLimiter,
	rulesLoader RulesLoader,
	creator ReservationCreator,
	maxCalls int,
	logger Logger,
) *Service {
	return &Service{
		limiter:      limiter,
		rulesLoader:  rulesLoader,
		creator:      creator,
		maxCalls:     maxCalls,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Active возвращает состояние голосовой линии ресторана
func (s *Service) Active(ctx context.Context, restaurantID int64) (*models.ActiveResponse, error) {
	active, err := s.limiter.Active(ctx, restaurantID)
	if err != nil {
		s.logger.Error("Active: restaurant=%d failed: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Active: %v", ErrInternal, err)
	}

	return &models.ActiveResponse{
		Active:   active,
		Max:      s.maxCalls,
		Overload: active >= s.maxCalls,
	}, nil
}

// HandleInbound обрабатывает транскрипт входящего звонка.
// Слот линии занимается на время обработки и освобождается всегда:
// зависшие звонки добивает TTL лимитера.
func (s *Service) HandleInbound(ctx context.Context, req *models.InboundRequest) (*models.InboundResponse, error) {
	granted, err := s.limiter.Acquire(ctx, req.RestaurantID, req.CallID)
	if err != nil {
		s.logger.Error("HandleInbound: restaurant=%d call=%s acquire failed: %v", req.RestaurantID, req.CallID, err)
		return nil, fmt.Errorf("%w: HandleInbound - acquire slot: %v", ErrInternal, err)
	}
	if !granted {
		s.logger.Warn("HandleInbound: restaurant=%d call=%s rejected, line busy", req.RestaurantID, req.CallID)
		return nil, ErrLineBusy
	}
	defer func() {
		if err := s.limiter.Release(ctx, req.RestaurantID, req.CallID); err != nil {
			s.logger.Warn("HandleInbound: restaurant=%d call=%s release failed: %v", req.RestaurantID, req.CallID, err)
		}
	}()

	rules, err := s.rulesLoader.Load(ctx, req.RestaurantID)
	if err != nil {
		s.logger.Error("HandleInbound: restaurant=%d failed to load rules: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: HandleInbound - load rules: %v", ErrInternal, err)
	}

	loc, err := rules.Settings.Location()
	if err != nil {
		loc = time.UTC
	}
	parsed, err := nlp.Parse(req.Transcript, s.timeProvider.Now().In(loc))
	if err != nil {
		s.logger.Warn("HandleInbound: restaurant=%d call=%s unparsable transcript: %v", req.RestaurantID, req.CallID, err)
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}

	name := strings.TrimSpace(req.CallerName)
	if name == "" {
		name = anonymousCaller
	}
	var phone *string
	if p := strings.TrimSpace(req.CallerPhone); p != "" {
		phone = &p
	}

	resp, err := s.creator.Create(ctx, create_reservation.Request{
		RestaurantID:  req.RestaurantID,
		Date:          parsed.Date,
		Time:          parsed.Time,
		CustomerName:  name,
		CustomerPhone: phone,
		PartySize:     parsed.PartySize,
		Source:        domain.SourceVoice,
	})
	if err != nil {
		if errors.Is(err, create_reservation.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
		}
		s.logger.Error("HandleInbound: restaurant=%d call=%s create failed: %v", req.RestaurantID, req.CallID, err)
		return nil, fmt.Errorf("%w: HandleInbound - create reservation: %v", ErrInternal, err)
	}

	if resp.Rejection != nil {
		return &models.InboundResponse{
			Date:      parsed.Date,
			Time:      parsed.Time,
			PartySize: parsed.PartySize,
			Rejection: &models.Rejection{
				ErrorCode: resp.Rejection.ErrorCode,
				Reason:    resp.Rejection.Reason,
				Suggested: resp.Rejection.Suggested,
			},
		}, nil
	}

	s.logger.Info("HandleInbound: restaurant=%d call=%s created reservation id=%d",
		req.RestaurantID, req.CallID, resp.Reservation.ID)

	return &models.InboundResponse{
		ReservationID: resp.Reservation.ID,
		Date:          parsed.Date,
		Time:          parsed.Time,
		PartySize:     parsed.PartySize,
	}, nil
}
