package types

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// DateString строка даты в формате "YYYY-MM-DD".
// Как и TimeString, хранится текстом для побайтовой совместимости.
type DateString string

const dateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ErrInvalidDateString возвращается при строке не в формате YYYY-MM-DD
var ErrInvalidDateString = errors.New("invalid date string format, expected YYYY-MM-DD")

// NewDateString создает DateString из time.Time
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString валидирует строку даты
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

// Validate проверяет формат и календарную корректность даты
func (d DateString) Validate() error {
	if !dateRe.MatchString(string(d)) {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// IsZero возвращает true для пустой строки
func (d DateString) IsZero() bool {
	return d == ""
}

// Time парсит дату в указанной таймзоне (полночь)
func (d DateString) Time(loc *time.Location) (time.Time, error) {
	if err := d.Validate(); err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(dateLayout, string(d), loc)
}

// WeekdayIndex возвращает день недели, 0 = понедельник .. 6 = воскресенье
func (d DateString) WeekdayIndex() (int, error) {
	t, err := d.Time(time.UTC)
	if err != nil {
		return 0, err
	}
	// time.Weekday: 0 = Sunday
	return (int(t.Weekday()) + 6) % 7, nil
}

func (d DateString) String() string {
	return string(d)
}
