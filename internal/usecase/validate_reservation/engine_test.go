package validate_reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/pkg/types"
)

// 2025-06-16 - понедельник
const monday = "2025-06-16"

func baseRules() *domain.EffectiveRules {
	return &domain.EffectiveRules{
		Weekly: [7][]domain.MinuteWindow{
			// понедельник: обед 12:00-15:00, ужин 19:00-23:00
			0: {
				{StartMin: 12 * 60, EndMin: 15 * 60},
				{StartMin: 19 * 60, EndMin: 23 * 60},
			},
		},
		Special: map[types.DateString]domain.SpecialEntry{},
		Settings: &domain.Settings{
			RestaurantID: 1,
			Timezone:     "Europe/Rome",
			SlotStepMin:  15,
			LastOrderMin: 15,
			MinParty:     1,
			MaxParty:     12,
		},
	}
}

func TestEvaluate_Accept(t *testing.T) {
	res := Evaluate(baseRules(), monday, "19:30", 4)
	assert.True(t, res.Ok)
	assert.Empty(t, res.ErrorCode)
	assert.Empty(t, res.Suggested)
}

func TestEvaluate_BadFormats(t *testing.T) {
	rules := baseRules()

	tests := []struct {
		name string
		date string
		time string
		code string
	}{
		{"date wrong separator", "2025/06/16", "19:30", CodeBadDate},
		{"date not a date", "someday", "19:30", CodeBadDate},
		{"date empty", "", "19:30", CodeBadDate},
		{"date impossible day", "2025-02-30", "19:30", CodeBadDate},
		{"time without zero padding", monday, "9:30", CodeBadTime},
		{"time out of range", monday, "24:00", CodeBadTime},
		{"time with seconds", monday, "19:30:00", CodeBadTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(rules, tt.date, tt.time, 4)
			require.False(t, res.Ok)
			assert.Equal(t, tt.code, res.ErrorCode)
		})
	}
}

func TestEvaluate_PartyBoundsInclusive(t *testing.T) {
	rules := baseRules()
	rules.Settings.MinParty = 2
	rules.Settings.MaxParty = 6

	for _, party := range []int{2, 6} {
		res := Evaluate(rules, monday, "19:30", party)
		assert.True(t, res.Ok, "party %d must be accepted", party)
	}
	for _, party := range []int{1, 7} {
		res := Evaluate(rules, monday, "19:30", party)
		require.False(t, res.Ok, "party %d must be rejected", party)
		assert.Equal(t, CodePartyOutOfRange, res.ErrorCode)
	}
}

func TestEvaluate_ClosedNoWeeklyWindows(t *testing.T) {
	rules := baseRules()

	// вторник без окон
	res := Evaluate(rules, "2025-06-17", "19:30", 2)
	require.False(t, res.Ok)
	assert.Equal(t, CodeClosed, res.ErrorCode)
	assert.Equal(t, "no_weekly_windows", res.Reason)
	assert.Empty(t, res.Suggested)
}

func TestEvaluate_SpecialDayClosedOverridesWeekly(t *testing.T) {
	rules := baseRules()
	rules.Special[monday] = domain.SpecialEntry{Closed: true}

	// недельное расписание открыто, но override закрывает день
	res := Evaluate(rules, monday, "19:30", 2)
	require.False(t, res.Ok)
	assert.Equal(t, CodeClosed, res.ErrorCode)
	assert.Equal(t, "special_day_closed", res.Reason)
}

func TestEvaluate_SpecialDayEmptyOpenMeansClosed(t *testing.T) {
	rules := baseRules()
	rules.Special[monday] = domain.SpecialEntry{Closed: false, Windows: nil}

	res := Evaluate(rules, monday, "19:30", 2)
	require.False(t, res.Ok)
	assert.Equal(t, CodeClosed, res.ErrorCode)
	assert.Equal(t, "no_special_windows", res.Reason)
}

func TestEvaluate_SpecialWindowsReplaceWeekly(t *testing.T) {
	rules := baseRules()
	rules.Special[monday] = domain.SpecialEntry{
		Windows: []domain.MinuteWindow{{StartMin: 10 * 60, EndMin: 11 * 60}},
	}

	// время валидно по недельному расписанию, но override его вытесняет
	res := Evaluate(rules, monday, "19:30", 2)
	require.False(t, res.Ok)
	assert.Equal(t, CodeOutsideHours, res.ErrorCode)

	res = Evaluate(rules, monday, "10:30", 2)
	assert.True(t, res.Ok)
}

func TestEvaluate_BadStepSuggestsRoundedUp(t *testing.T) {
	tests := []struct {
		step      int
		time      string
		suggested string
	}{
		{15, "19:37", monday + "T19:45"},
		{30, "19:31", monday + "T20:00"},
		{60, "19:01", monday + "T20:00"},
	}

	for _, tt := range tests {
		rules := baseRules()
		rules.Settings.SlotStepMin = tt.step

		res := Evaluate(rules, monday, tt.time, 2)
		require.False(t, res.Ok, "step=%d time=%s", tt.step, tt.time)
		assert.Equal(t, CodeBadStep, res.ErrorCode)
		assert.Equal(t, tt.suggested, res.Suggested)
	}
}

func TestEvaluate_BadStepRollsOverMidnight(t *testing.T) {
	rules := baseRules()
	rules.Settings.SlotStepMin = 30
	rules.Weekly[0] = []domain.MinuteWindow{{StartMin: 19 * 60, EndMin: 23*60 + 59}}

	res := Evaluate(rules, monday, "23:45", 2)
	require.False(t, res.Ok)
	assert.Equal(t, CodeBadStep, res.ErrorCode)
	assert.Equal(t, "2025-06-17T00:00", res.Suggested)
}

func TestEvaluate_ZeroStepDisablesAlignment(t *testing.T) {
	rules := baseRules()
	rules.Settings.SlotStepMin = 0

	res := Evaluate(rules, monday, "19:37", 2)
	assert.True(t, res.Ok)
}

func TestEvaluate_LastOrderMarginInclusive(t *testing.T) {
	rules := baseRules()
	rules.Settings.SlotStepMin = 0
	rules.Settings.LastOrderMin = 30
	rules.Weekly[0] = []domain.MinuteWindow{{StartMin: 19 * 60, EndMin: 23 * 60}}

	// effective end = 22:30, граница включительно
	res := Evaluate(rules, monday, "22:29", 2)
	assert.True(t, res.Ok)

	res = Evaluate(rules, monday, "22:30", 2)
	assert.True(t, res.Ok)

	res = Evaluate(rules, monday, "22:31", 2)
	require.False(t, res.Ok)
	assert.Equal(t, CodeOutsideHours, res.ErrorCode)
}

func TestEvaluate_OutsideHoursSuggestsNextWindow(t *testing.T) {
	// 15:30 после эффективного конца обеда, ужин еще впереди
	res := Evaluate(baseRules(), monday, "15:30", 2)
	require.False(t, res.Ok)
	assert.Equal(t, CodeOutsideHours, res.ErrorCode)
	assert.Equal(t, monday+"T19:00", res.Suggested)
}

func TestEvaluate_OutsideHoursPastLastWindow(t *testing.T) {
	res := Evaluate(baseRules(), monday, "23:45", 2)
	require.False(t, res.Ok)
	assert.Equal(t, CodeOutsideHours, res.ErrorCode)
	assert.Equal(t, ReasonPastLastWindow, res.Reason)
	assert.Empty(t, res.Suggested)
}

func TestEvaluate_UnfillableWindowAllowed(t *testing.T) {
	// маржа больше окна: окно никогда не выполнимо, но это не ошибка
	rules := baseRules()
	rules.Settings.SlotStepMin = 0
	rules.Settings.LastOrderMin = 120
	rules.Weekly[0] = []domain.MinuteWindow{{StartMin: 19 * 60, EndMin: 20 * 60}}

	res := Evaluate(rules, monday, "19:00", 2)
	require.False(t, res.Ok)
	assert.Equal(t, CodeOutsideHours, res.ErrorCode)
	assert.Equal(t, ReasonPastLastWindow, res.Reason)
}
