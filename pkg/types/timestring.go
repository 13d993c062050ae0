package types

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// TimeString строка времени в формате "HH:MM" (24h, zero-padded).
// Хранится в БД как текст, чтобы формат совпадал байт-в-байт с тем,
// что отдают и принимают клиенты.
type TimeString string

const timeLayout = "15:04"

var timeRe = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)

// ErrInvalidTimeString возвращается при строке не в формате HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString нормализует "H:MM" -> "HH:MM" и валидирует
func NewTimeStringFromString(s string) (TimeString, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	norm := fmt.Sprintf("%02d:%02d", h, m)
	ts := TimeString(norm)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из минут с полуночи
func NewTimeStringFromMinutes(min int) (TimeString, error) {
	if min < 0 || min >= 24*60 {
		return "", fmt.Errorf("%w: %d minutes", ErrInvalidTimeString, min)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", min/60, min%60)), nil
}

// Validate проверяет формат HH:MM (24h, zero-padded)
func (t TimeString) Validate() error {
	if !timeRe.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true для пустой строки
func (t TimeString) IsZero() bool {
	return t == ""
}

// MinuteOfDay возвращает минуты с полуночи (0..1439)
func (t TimeString) MinuteOfDay() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	var h, m int
	fmt.Sscanf(string(t), "%d:%d", &h, &m)
	return h*60 + m, nil
}

// IsBefore сравнивает два валидных TimeString.
// Zero-padded HH:MM сравниваются корректно как строки.
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter сравнивает два валидных TimeString
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

// AddMinutes возвращает время через delta минут (в пределах суток)
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	min, err := t.MinuteOfDay()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(min + delta)
}

func (t TimeString) String() string {
	return string(t)
}
