package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	scheduleRepo "github.com/xalexyi/prenotazioni-ai/internal/infra/storage/schedule"
	"github.com/xalexyi/prenotazioni-ai/pkg/ptr"
	"github.com/xalexyi/prenotazioni-ai/pkg/types"
)

type stubScheduleRepo struct {
	weekly   []*domain.WeeklyWindow
	special  []*domain.SpecialDayRow
	settings *domain.Settings

	settingsErr error
}

func (s *stubScheduleRepo) GetWeeklyWindows(_ context.Context, _ int64) ([]*domain.WeeklyWindow, error) {
	return s.weekly, nil
}

func (s *stubScheduleRepo) GetSpecialDayRows(_ context.Context, _ int64) ([]*domain.SpecialDayRow, error) {
	return s.special, nil
}

func (s *stubScheduleRepo) GetSettings(_ context.Context, _ int64) (*domain.Settings, error) {
	if s.settingsErr != nil {
		return nil, s.settingsErr
	}
	return s.settings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ts(s string) types.TimeString { return types.TimeString(s) }

func TestLoader_DefaultsWhenNoSettingsRow(t *testing.T) {
	repo := &stubScheduleRepo{settingsErr: scheduleRepo.ErrSettingsNotFound}
	loader := NewLoader(repo, nopLogger{})

	rules, err := loader.Load(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTimezone, rules.Settings.Timezone)
	assert.Equal(t, domain.DefaultSlotStepMin, rules.Settings.SlotStepMin)
	assert.Equal(t, domain.DefaultLastOrderMin, rules.Settings.LastOrderMin)
	assert.Equal(t, domain.DefaultMinParty, rules.Settings.MinParty)
	assert.Equal(t, domain.DefaultMaxParty, rules.Settings.MaxParty)
}

func TestLoader_WeeklyWindowsParsedAndSorted(t *testing.T) {
	repo := &stubScheduleRepo{
		settingsErr: scheduleRepo.ErrSettingsNotFound,
		weekly: []*domain.WeeklyWindow{
			{ID: 2, Weekday: 0, Window: domain.Window{Start: ts("19:00"), End: ts("23:00")}},
			{ID: 1, Weekday: 0, Window: domain.Window{Start: ts("12:00"), End: ts("15:00")}},
		},
	}
	loader := NewLoader(repo, nopLogger{})

	rules, err := loader.Load(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, rules.Weekly[0], 2)
	assert.Equal(t, domain.MinuteWindow{StartMin: 720, EndMin: 900}, rules.Weekly[0][0])
	assert.Equal(t, domain.MinuteWindow{StartMin: 1140, EndMin: 1380}, rules.Weekly[0][1])
	assert.Empty(t, rules.Weekly[1])
}

func TestLoader_CorruptWeeklyTime(t *testing.T) {
	repo := &stubScheduleRepo{
		settingsErr: scheduleRepo.ErrSettingsNotFound,
		weekly: []*domain.WeeklyWindow{
			{ID: 7, Weekday: 2, Window: domain.Window{Start: ts("25:00"), End: ts("26:00")}},
		},
	}
	loader := NewLoader(repo, nopLogger{})

	_, err := loader.Load(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCorruptRuleData)
}

func TestLoader_SpecialDayClosedMarkerWins(t *testing.T) {
	date := types.DateString("2025-12-25")
	repo := &stubScheduleRepo{
		settingsErr: scheduleRepo.ErrSettingsNotFound,
		special: []*domain.SpecialDayRow{
			{ID: 1, Date: date, IsClosed: false, Start: ptr.Ptr(ts("12:00")), End: ptr.Ptr(ts("15:00"))},
			{ID: 2, Date: date, IsClosed: true},
		},
	}
	loader := NewLoader(repo, nopLogger{})

	rules, err := loader.Load(context.Background(), 1)
	require.NoError(t, err)

	entry, ok := rules.Special[date]
	require.True(t, ok)
	assert.True(t, entry.Closed)
	assert.Empty(t, entry.Windows)
}

func TestLoader_SpecialDayOpenWindows(t *testing.T) {
	date := types.DateString("2025-12-31")
	repo := &stubScheduleRepo{
		settingsErr: scheduleRepo.ErrSettingsNotFound,
		special: []*domain.SpecialDayRow{
			{ID: 1, Date: date, Start: ptr.Ptr(ts("18:00")), End: ptr.Ptr(ts("23:30"))},
			{ID: 2, Date: date, Start: ptr.Ptr(ts("11:00")), End: ptr.Ptr(ts("14:00"))},
		},
	}
	loader := NewLoader(repo, nopLogger{})

	rules, err := loader.Load(context.Background(), 1)
	require.NoError(t, err)

	entry := rules.Special[date]
	require.Len(t, entry.Windows, 2)
	assert.False(t, entry.Closed)
	// отсортированы по началу
	assert.Equal(t, 660, entry.Windows[0].StartMin)
	assert.Equal(t, 1080, entry.Windows[1].StartMin)
}

func TestLoader_SpecialDayOpenWithoutBoundsIsCorrupt(t *testing.T) {
	repo := &stubScheduleRepo{
		settingsErr: scheduleRepo.ErrSettingsNotFound,
		special: []*domain.SpecialDayRow{
			{ID: 3, Date: types.DateString("2025-11-01"), IsClosed: false},
		},
	}
	loader := NewLoader(repo, nopLogger{})

	_, err := loader.Load(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCorruptRuleData)
}

func TestLoader_StoredSettingsUsed(t *testing.T) {
	repo := &stubScheduleRepo{
		settings: &domain.Settings{
			RestaurantID: 1,
			Timezone:     "Europe/Rome",
			SlotStepMin:  30,
			LastOrderMin: 45,
			MinParty:     2,
			MaxParty:     8,
		},
	}
	loader := NewLoader(repo, nopLogger{})

	rules, err := loader.Load(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 30, rules.Settings.SlotStepMin)
	assert.Equal(t, 45, rules.Settings.LastOrderMin)
	assert.Equal(t, 2, rules.Settings.MinParty)
	assert.Equal(t, 8, rules.Settings.MaxParty)
}
