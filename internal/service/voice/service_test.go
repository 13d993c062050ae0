package voice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/internal/service/voice/models"
	"github.com/xalexyi/prenotazioni-ai/internal/usecase/create_reservation"
	"github.com/xalexyi/prenotazioni-ai/pkg/types"
)

type stubLimiter struct {
	active   int
	max      int
	released []string
}

func (s *stubLimiter) Acquire(_ context.Context, _ int64, _ string) (bool, error) {
	if s.active >= s.max {
		return false, nil
	}
	s.active++
	return true, nil
}

func (s *stubLimiter) Release(_ context.Context, _ int64, callID string) error {
	s.active--
	s.released = append(s.released, callID)
	return nil
}

func (s *stubLimiter) Active(_ context.Context, _ int64) (int, error) {
	return s.active, nil
}

type stubRulesLoader struct{}

func (stubRulesLoader) Load(_ context.Context, rid int64) (*domain.EffectiveRules, error) {
	return &domain.EffectiveRules{
		Special:  map[types.DateString]domain.SpecialEntry{},
		Settings: domain.DefaultSettings(rid),
	}, nil
}

type stubCreator struct {
	lastReq  create_reservation.Request
	response *create_reservation.Response
}

func (s *stubCreator) Create(_ context.Context, req create_reservation.Request) (*create_reservation.Response, error) {
	s.lastReq = req
	return s.response, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newVoiceService(limiter *stubLimiter, creator *stubCreator) *Service {
	svc := NewService(limiter, stubRulesLoader{}, creator, limiter.max, nopLogger{})
	svc.timeProvider = fixedTime{now: time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)}
	return svc
}

func TestHandleInbound_CreatesReservation(t *testing.T) {
	limiter := &stubLimiter{max: 3}
	creator := &stubCreator{response: &create_reservation.Response{
		Reservation: &domain.Reservation{ID: 55},
	}}
	svc := newVoiceService(limiter, creator)

	resp, err := svc.HandleInbound(context.Background(), &models.InboundRequest{
		RestaurantID: 1,
		CallID:       "CA123",
		CallerPhone:  "+390612345678",
		Transcript:   "Vorrei prenotare domani alle 20 per tre persone",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(55), resp.ReservationID)
	assert.Equal(t, "2025-06-17", resp.Date)
	assert.Equal(t, "20:00", resp.Time)
	assert.Equal(t, 3, resp.PartySize)

	// бронь ушла через общий конвейер с источником voice
	assert.Equal(t, domain.SourceVoice, creator.lastReq.Source)
	assert.Equal(t, anonymousCaller, creator.lastReq.CustomerName)
	require.NotNil(t, creator.lastReq.CustomerPhone)
	assert.Equal(t, "+390612345678", *creator.lastReq.CustomerPhone)

	// слот освобожден после обработки
	assert.Equal(t, []string{"CA123"}, limiter.released)
}

func TestHandleInbound_LineBusy(t *testing.T) {
	limiter := &stubLimiter{max: 0}
	svc := newVoiceService(limiter, &stubCreator{})

	_, err := svc.HandleInbound(context.Background(), &models.InboundRequest{
		RestaurantID: 1,
		CallID:       "CA123",
		Transcript:   "domani alle 20",
	})
	assert.ErrorIs(t, err, ErrLineBusy)
}

func TestHandleInbound_RejectionPassedThrough(t *testing.T) {
	limiter := &stubLimiter{max: 1}
	creator := &stubCreator{response: &create_reservation.Response{
		Rejection: &create_reservation.Rejection{ErrorCode: "closed", Reason: "special_day_closed"},
	}}
	svc := newVoiceService(limiter, creator)

	resp, err := svc.HandleInbound(context.Background(), &models.InboundRequest{
		RestaurantID: 1,
		CallID:       "CA124",
		Transcript:   "domani alle 20 per due",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Rejection)
	assert.Equal(t, "closed", resp.Rejection.ErrorCode)
	assert.Zero(t, resp.ReservationID)
}

func TestHandleInbound_UnparsableReleasesSlot(t *testing.T) {
	limiter := &stubLimiter{max: 1}
	svc := newVoiceService(limiter, &stubCreator{})

	_, err := svc.HandleInbound(context.Background(), &models.InboundRequest{
		RestaurantID: 1,
		CallID:       "CA125",
		Transcript:   "buongiorno volevo informazioni",
	})
	assert.ErrorIs(t, err, ErrUnparsable)
	assert.Zero(t, limiter.active)
}

func TestActive_Overload(t *testing.T) {
	limiter := &stubLimiter{max: 2, active: 2}
	svc := newVoiceService(limiter, &stubCreator{})

	resp, err := svc.Active(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Active)
	assert.Equal(t, 2, resp.Max)
	assert.True(t, resp.Overload)
}
