package domain

import "github.com/xalexyi/prenotazioni-ai/pkg/types"

// Window одно окно работы ресторана, например 12:00-15:00
type Window struct {
	Start types.TimeString
	End   types.TimeString
}

// WeeklyWindow окно недельного расписания, привязано к дню недели.
// На один weekday допускается несколько окон (обед + ужин);
// пересечения окон не запрещаются.
type WeeklyWindow struct {
	ID           int64
	RestaurantID int64
	Weekday      int // 0 = понедельник .. 6 = воскресенье
	Window
}

// SpecialDayRow строка override'а на конкретную дату.
// Для закрытого дня хранится одна строка-маркер с IsClosed=true и
// пустыми временами; для особых окон - N строк с IsClosed=false.
type SpecialDayRow struct {
	ID           int64
	RestaurantID int64
	Date         types.DateString
	IsClosed     bool
	Start        *types.TimeString
	End          *types.TimeString
}
