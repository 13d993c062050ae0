package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	reservationRepo "github.com/xalexyi/prenotazioni-ai/internal/infra/storage/reservation"
	"github.com/xalexyi/prenotazioni-ai/internal/service/reservations/models"
)

type fakeRepo struct {
	byID map[int64]*domain.Reservation

	statusCalls int
}

func newFakeRepo(items ...*domain.Reservation) *fakeRepo {
	repo := &fakeRepo{byID: make(map[int64]*domain.Reservation)}
	for _, r := range items {
		repo.byID[r.ID] = r
	}
	return repo
}

func (f *fakeRepo) GetByID(_ context.Context, restaurantID, reservationID int64) (*domain.Reservation, error) {
	r, ok := f.byID[reservationID]
	if !ok || r.RestaurantID != restaurantID {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeRepo) ListWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	list := make([]*domain.Reservation, 0)
	for _, r := range f.byID {
		if r.RestaurantID == filter.RestaurantID {
			list = append(list, r)
		}
	}
	return list, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, restaurantID, reservationID int64, status domain.ReservationStatus) error {
	f.statusCalls++
	r, ok := f.byID[reservationID]
	if !ok || r.RestaurantID != restaurantID {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, restaurantID, reservationID int64) error {
	r, ok := f.byID[reservationID]
	if !ok || r.RestaurantID != restaurantID {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.byID, reservationID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func phone(s string) *string { return &s }

func pendingReservation(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:            id,
		RestaurantID:  1,
		Date:          "2025-06-16",
		Time:          "19:30",
		CustomerName:  "Mario Rossi",
		CustomerPhone: phone("+390612345678"),
		PartySize:     4,
		Status:        domain.StatusPending,
		Source:        domain.SourceManual,
		CreatedAt:     time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestGet_ReturnsReservation(t *testing.T) {
	svc := NewService(newFakeRepo(pendingReservation(42)), nopLogger{})

	resp, err := svc.Get(context.Background(), 1, 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-06-16", resp.Date)
	assert.Equal(t, "19:30", resp.Time)
	assert.Equal(t, "Mario Rossi", resp.CustomerName)
	require.NotNil(t, resp.CustomerPhone)
	assert.Equal(t, "+390612345678", *resp.CustomerPhone)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2025-06-10T09:00:00Z", resp.CreatedAt)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(pendingReservation(42)), nopLogger{})

	// чужой ресторан не видит бронь
	_, err := svc.Get(context.Background(), 2, 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.Get(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUpdateStatus_ConfirmsPending(t *testing.T) {
	repo := newFakeRepo(pendingReservation(42))
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, 42, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.byID[42].Status)
}

func TestUpdateStatus_CancelledIsTerminal(t *testing.T) {
	cancelled := pendingReservation(42)
	cancelled.Status = domain.StatusCancelled
	repo := newFakeRepo(cancelled)
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, 42, "confirmed")
	assert.ErrorIs(t, err, ErrReservationCancelled)
	// до репозитория запись не дошла
	assert.Zero(t, repo.statusCalls)
	assert.Equal(t, domain.StatusCancelled, repo.byID[42].Status)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := newFakeRepo(pendingReservation(42))
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, 42, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Zero(t, repo.statusCalls)
}

func TestList_BadDateFilter(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.List(context.Background(), &models.ListRequest{
		RestaurantID: 1,
		Date:         "16/06/2025",
	})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = svc.List(context.Background(), &models.ListRequest{
		RestaurantID: 1,
		SinceDate:    "yesterday",
	})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	err := svc.Delete(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
