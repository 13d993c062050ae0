package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("9:05")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:05"), ts)

	ts, err = NewTimeStringFromString("23:59")
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), ts)

	for _, bad := range []string{"", "24:00", "12:60", "nope", "12", "12:5"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", bad)
	}
}

func TestTimeStringMinuteOfDay(t *testing.T) {
	min, err := TimeString("00:00").MinuteOfDay()
	require.NoError(t, err)
	assert.Equal(t, 0, min)

	min, err = TimeString("22:30").MinuteOfDay()
	require.NoError(t, err)
	assert.Equal(t, 22*60+30, min)

	_, err = TimeString("25:00").MinuteOfDay()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := TimeString("12:07").AddMinutes(8)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:15"), ts)

	// выход за пределы суток - ошибка, кросс-полуночные окна не поддерживаются
	_, err = TimeString("23:50").AddMinutes(30)
	assert.Error(t, err)
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.True(t, TimeString("10:30").IsAfter("09:00"))
	assert.False(t, TimeString("10:30").IsBefore("10:30"))
}

func TestDateString(t *testing.T) {
	d, err := NewDateStringFromString("2025-12-25")
	require.NoError(t, err)

	// 2025-12-25 - четверг
	wd, err := d.WeekdayIndex()
	require.NoError(t, err)
	assert.Equal(t, 3, wd)

	for _, bad := range []string{"", "2025-13-01", "2025-02-30", "25-12-2025", "2025/12/25"} {
		_, err := NewDateStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidDateString, "input %q", bad)
	}
}
