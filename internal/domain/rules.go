package domain

import "github.com/xalexyi/prenotazioni-ai/pkg/types"

// MinuteWindow окно, распаршенное в минуты с полуночи.
// Парсинг выполняется один раз при загрузке правил, чтобы горячий
// путь сравнения не трогал строки.
type MinuteWindow struct {
	StartMin int
	EndMin   int
}

// Contains проверяет попадание минуты в окно с учетом last-order маржи.
// Обе границы включительно: start <= t <= end-margin.
// Маржа может сделать окно невыполнимым (end-margin < start) - это
// легальная конфигурация, а не ошибка.
func (w MinuteWindow) Contains(minute, lastOrderMin int) bool {
	return w.StartMin <= minute && minute <= w.EndMin-lastOrderMin
}

// SpecialEntry собранный override на одну дату
type SpecialEntry struct {
	Closed  bool
	Windows []MinuteWindow
}

// EffectiveRules снимок правил одного ресторана для одной проверки.
// Иммутабелен после загрузки; между запросами не кэшируется.
type EffectiveRules struct {
	Weekly   [7][]MinuteWindow
	Special  map[types.DateString]SpecialEntry
	Settings *Settings
}

// WindowsForDate возвращает окна, действующие на дату, с учетом
// приоритета override'ов: любая запись special полностью вытесняет
// недельное расписание этого дня.
func (r *EffectiveRules) WindowsForDate(date types.DateString) (windows []MinuteWindow, closedReason ClosedReason) {
	if entry, ok := r.Special[date]; ok {
		if entry.Closed {
			return nil, ClosedSpecialDay
		}
		if len(entry.Windows) == 0 {
			// открытый override без окон трактуем как закрыто -
			// консервативное чтение неоднозначного состояния
			return nil, ClosedNoSpecialWindows
		}
		return entry.Windows, ""
	}

	weekday, err := date.WeekdayIndex()
	if err != nil {
		return nil, ClosedNoWeeklyWindows
	}
	weekly := r.Weekly[weekday]
	if len(weekly) == 0 {
		return nil, ClosedNoWeeklyWindows
	}
	return weekly, ""
}

// ClosedReason диагностический subcode отказа "closed"
type ClosedReason string

const (
	ClosedSpecialDay       ClosedReason = "special_day_closed"
	ClosedNoSpecialWindows ClosedReason = "no_special_windows"
	ClosedNoWeeklyWindows  ClosedReason = "no_weekly_windows"
)
