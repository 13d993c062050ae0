package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	scheduleRepo "github.com/xalexyi/prenotazioni-ai/internal/infra/storage/schedule"
	"github.com/xalexyi/prenotazioni-ai/internal/service/rules"
	"github.com/xalexyi/prenotazioni-ai/internal/service/schedule/models"
	"github.com/xalexyi/prenotazioni-ai/pkg/ptr"
	"github.com/xalexyi/prenotazioni-ai/pkg/types"
)

// fakeRepo расписание в памяти с той же replace-семантикой, что у БД
type fakeRepo struct {
	weekly   map[int][]domain.Window
	special  map[types.DateString]*fakeSpecial
	settings *domain.Settings

	replaceCalls int
}

type fakeSpecial struct {
	closed  bool
	windows []domain.Window
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		weekly:  make(map[int][]domain.Window),
		special: make(map[types.DateString]*fakeSpecial),
	}
}

func (f *fakeRepo) GetWeeklyWindows(_ context.Context, rid int64) ([]*domain.WeeklyWindow, error) {
	rows := make([]*domain.WeeklyWindow, 0)
	for weekday := domain.MinWeekday; weekday <= domain.MaxWeekday; weekday++ {
		for _, w := range f.weekly[weekday] {
			rows = append(rows, &domain.WeeklyWindow{RestaurantID: rid, Weekday: weekday, Window: w})
		}
	}
	return rows, nil
}

func (f *fakeRepo) ReplaceWeeklyWindows(_ context.Context, _ int64, weekday int, windows []domain.Window) error {
	f.replaceCalls++
	if len(windows) == 0 {
		delete(f.weekly, weekday)
		return nil
	}
	f.weekly[weekday] = windows
	return nil
}

func (f *fakeRepo) GetSpecialDayRows(_ context.Context, rid int64) ([]*domain.SpecialDayRow, error) {
	rows := make([]*domain.SpecialDayRow, 0)
	for date, sp := range f.special {
		if sp.closed {
			rows = append(rows, &domain.SpecialDayRow{RestaurantID: rid, Date: date, IsClosed: true})
			continue
		}
		for _, w := range sp.windows {
			start, end := w.Start, w.End
			rows = append(rows, &domain.SpecialDayRow{RestaurantID: rid, Date: date, Start: &start, End: &end})
		}
	}
	return rows, nil
}

func (f *fakeRepo) UpsertSpecialDay(_ context.Context, _ int64, date types.DateString, closed bool, windows []domain.Window) error {
	f.special[date] = &fakeSpecial{closed: closed, windows: windows}
	return nil
}

func (f *fakeRepo) DeleteSpecialDay(_ context.Context, _ int64, date types.DateString) error {
	if _, ok := f.special[date]; !ok {
		return scheduleRepo.ErrSpecialDayNotFound
	}
	delete(f.special, date)
	return nil
}

func (f *fakeRepo) GetSettings(_ context.Context, _ int64) (*domain.Settings, error) {
	if f.settings == nil {
		return nil, scheduleRepo.ErrSettingsNotFound
	}
	return f.settings, nil
}

func (f *fakeRepo) UpsertSettings(_ context.Context, s *domain.Settings) error {
	f.settings = s
	return nil
}

type passTxManager struct{}

func (passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *fakeRepo) *Service {
	return NewService(repo, passTxManager{}, nopLogger{})
}

func TestReplaceWeekly_InvalidTimeDoesNotTouchStore(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	err := svc.ReplaceWeekly(context.Background(), &models.ReplaceWeeklyRequest{
		RestaurantID: 1,
		Weekday:      0,
		Windows:      []models.WindowInput{{Start: "12:00", End: "25:99"}},
	})
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	assert.Zero(t, repo.replaceCalls)
}

func TestReplaceWeekly_InvalidWeekday(t *testing.T) {
	svc := newService(newFakeRepo())

	err := svc.ReplaceWeekly(context.Background(), &models.ReplaceWeeklyRequest{
		RestaurantID: 1,
		Weekday:      7,
		Windows:      []models.WindowInput{{Start: "12:00", End: "15:00"}},
	})
	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestReplaceWeekly_EmptyListClosesDay(t *testing.T) {
	repo := newFakeRepo()
	repo.weekly[0] = []domain.Window{{Start: "12:00", End: "15:00"}}
	svc := newService(repo)

	err := svc.ReplaceWeekly(context.Background(), &models.ReplaceWeeklyRequest{
		RestaurantID: 1,
		Weekday:      0,
		Windows:      nil,
	})
	require.NoError(t, err)
	assert.Empty(t, repo.weekly[0])
}

func TestReplaceWeeklyBulk_MissingDaysBecomeClosed(t *testing.T) {
	repo := newFakeRepo()
	repo.weekly[5] = []domain.Window{{Start: "12:00", End: "15:00"}}
	svc := newService(repo)

	err := svc.ReplaceWeeklyBulk(context.Background(), &models.ReplaceWeeklyBulkRequest{
		RestaurantID: 1,
		Week: map[int][]models.WindowInput{
			0: {{Start: "12:00", End: "15:00"}, {Start: "19:00", End: "23:00"}},
			3: {{Start: "19:00", End: "23:00"}},
		},
	})
	require.NoError(t, err)

	assert.Len(t, repo.weekly[0], 2)
	assert.Len(t, repo.weekly[3], 1)
	// суббота не пришла в запросе - закрыта
	assert.Empty(t, repo.weekly[5])
	// replace вызван для всех семи дней
	assert.Equal(t, 7, repo.replaceCalls)
}

func TestReplaceWeekly_IdempotentThroughLoader(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	loader := rules.NewLoader(repo, nopLogger{})
	ctx := context.Background()

	req := &models.ReplaceWeeklyRequest{
		RestaurantID: 1,
		Weekday:      0,
		Windows: []models.WindowInput{
			{Start: "19:00", End: "23:00"},
			{Start: "12:00", End: "15:00"},
		},
	}
	require.NoError(t, svc.ReplaceWeekly(ctx, req))
	first, err := loader.Load(ctx, 1)
	require.NoError(t, err)

	// повторная замена теми же окнами не меняет действующие правила
	require.NoError(t, svc.ReplaceWeekly(ctx, req))
	second, err := loader.Load(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, first.Weekly, second.Weekly)
	assert.Equal(t, []domain.MinuteWindow{
		{StartMin: 720, EndMin: 900},
		{StartMin: 1140, EndMin: 1380},
	}, second.Weekly[0])
}

func TestReplaceWeeklyBulk_RoundTripThroughLoader(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	loader := rules.NewLoader(repo, nopLogger{})
	ctx := context.Background()

	err := svc.ReplaceWeeklyBulk(ctx, &models.ReplaceWeeklyBulkRequest{
		RestaurantID: 1,
		Week: map[int][]models.WindowInput{
			0: {{Start: "19:00", End: "23:00"}, {Start: "12:00", End: "15:00"}},
			4: {{Start: "18:30", End: "23:30"}},
			6: {{Start: "11:00", End: "16:00"}},
		},
	})
	require.NoError(t, err)

	loaded, err := loader.Load(ctx, 1)
	require.NoError(t, err)

	// записанная неделя читается обратно теми же наборами окон
	assert.ElementsMatch(t, []domain.MinuteWindow{
		{StartMin: 720, EndMin: 900},
		{StartMin: 1140, EndMin: 1380},
	}, loaded.Weekly[0])
	assert.ElementsMatch(t, []domain.MinuteWindow{{StartMin: 1110, EndMin: 1410}}, loaded.Weekly[4])
	assert.ElementsMatch(t, []domain.MinuteWindow{{StartMin: 660, EndMin: 960}}, loaded.Weekly[6])
	for _, weekday := range []int{1, 2, 3, 5} {
		assert.Empty(t, loaded.Weekly[weekday])
	}
}

func TestUpsertSpecialDay_ClosedAndReopen(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	ctx := context.Background()

	err := svc.UpsertSpecialDay(ctx, &models.UpsertSpecialDayRequest{
		RestaurantID: 1,
		Date:         "2025-12-25",
		IsClosed:     true,
	})
	require.NoError(t, err)
	assert.True(t, repo.special["2025-12-25"].closed)

	err = svc.UpsertSpecialDay(ctx, &models.UpsertSpecialDayRequest{
		RestaurantID: 1,
		Date:         "2025-12-25",
		Windows:      []models.WindowInput{{Start: "18:00", End: "22:00"}},
	})
	require.NoError(t, err)
	assert.False(t, repo.special["2025-12-25"].closed)
	assert.Len(t, repo.special["2025-12-25"].windows, 1)
}

func TestUpsertSpecialDay_InvalidDate(t *testing.T) {
	svc := newService(newFakeRepo())

	err := svc.UpsertSpecialDay(context.Background(), &models.UpsertSpecialDayRequest{
		RestaurantID: 1,
		Date:         "25-12-2025",
		IsClosed:     true,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDeleteSpecialDay_NotFound(t *testing.T) {
	svc := newService(newFakeRepo())

	err := svc.DeleteSpecialDay(context.Background(), 1, "2025-12-25")
	assert.ErrorIs(t, err, ErrSpecialDayNotFound)
}

func TestUpdateSettings_PartialMergeOverDefaults(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	resp, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
		RestaurantID: 1,
		SlotStepMin:  ptr.Ptr(30),
		MaxParty:     ptr.Ptr(20),
	})
	require.NoError(t, err)

	// переданные поля обновлены, остальные остались дефолтными
	assert.Equal(t, 30, resp.SlotStepMin)
	assert.Equal(t, 20, resp.MaxParty)
	assert.Equal(t, domain.DefaultTimezone, resp.Timezone)
	assert.Equal(t, domain.DefaultLastOrderMin, resp.LastOrderMin)
	assert.Equal(t, domain.DefaultMinParty, resp.MinParty)
}

func TestUpdateSettings_RejectsBadBounds(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	ctx := context.Background()

	_, err := svc.UpdateSettings(ctx, &models.UpdateSettingsRequest{
		RestaurantID: 1,
		MinParty:     ptr.Ptr(10),
		MaxParty:     ptr.Ptr(2),
	})
	assert.ErrorIs(t, err, ErrInvalidSettings)
	assert.Nil(t, repo.settings)

	_, err = svc.UpdateSettings(ctx, &models.UpdateSettingsRequest{
		RestaurantID: 1,
		Timezone:     ptr.Ptr("Mars/Olympus"),
	})
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestState_Snapshot(t *testing.T) {
	repo := newFakeRepo()
	repo.weekly[0] = []domain.Window{{Start: "12:00", End: "15:00"}}
	repo.special["2025-12-25"] = &fakeSpecial{closed: true}
	repo.special["2025-12-31"] = &fakeSpecial{
		windows: []domain.Window{{Start: "18:00", End: "23:30"}},
	}
	svc := newService(repo)

	state, err := svc.State(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, state.Weekly[0], 1)
	assert.Equal(t, "12:00", state.Weekly[0][0].Start)
	assert.Empty(t, state.Weekly[1])

	require.Len(t, state.SpecialDays, 2)
	assert.Equal(t, "2025-12-25", state.SpecialDays[0].Date)
	assert.True(t, state.SpecialDays[0].IsClosed)
	assert.Equal(t, "2025-12-31", state.SpecialDays[1].Date)
	assert.Len(t, state.SpecialDays[1].Windows, 1)

	assert.Equal(t, domain.DefaultSlotStepMin, state.Settings.SlotStepMin)
}
