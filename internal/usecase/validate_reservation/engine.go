package validate_reservation

import (
	"time"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/pkg/types"
)

// Evaluate прогоняет кандидата через конвейер проверок.
// Чистая функция над снимком правил: ни I/O, ни общего состояния,
// порядок проверок фиксирован и короткозамкнут.
//
//  1. формат даты и времени
//  2. границы размера компании (обе включительно)
//  3. окна на дату с приоритетом override'ов
//  4. выравнивание по шагу слота, с подсказкой округления вверх
//  5. попадание в окно с last-order маржой, с подсказкой следующего окна
func Evaluate(rules *domain.EffectiveRules, rawDate, rawTime string, partySize int) Result {
	date := types.DateString(rawDate)
	if err := date.Validate(); err != nil {
		return reject(CodeBadDate)
	}
	candidate := types.TimeString(rawTime)
	if err := candidate.Validate(); err != nil {
		return reject(CodeBadTime)
	}

	settings := rules.Settings
	if partySize < settings.MinParty || partySize > settings.MaxParty {
		return reject(CodePartyOutOfRange)
	}

	windows, closedReason := rules.WindowsForDate(date)
	if len(windows) == 0 {
		return rejectWithReason(CodeClosed, string(closedReason))
	}

	minute, err := candidate.MinuteOfDay()
	if err != nil {
		// регулярка выше уже гарантировала парсабельность
		return reject(CodeBadTime)
	}

	if step := settings.SlotStepMin; step > 0 {
		if rem := minute % step; rem != 0 {
			return rejectWithSuggestion(CodeBadStep, suggestionAt(date, minute+step-rem))
		}
	}

	for _, w := range windows {
		if w.Contains(minute, settings.LastOrderMin) {
			return accept()
		}
	}

	// окна отсортированы по началу: первое с start > candidate и есть
	// ближайшее будущее окно этого дня
	for _, w := range windows {
		if minute < w.StartMin {
			return rejectWithSuggestion(CodeOutsideHours, suggestionAt(date, w.StartMin))
		}
	}

	return rejectWithReason(CodeOutsideHours, ReasonPastLastWindow)
}

// suggestionAt форматирует подсказку "YYYY-MM-DDTHH:MM".
// minute может выйти за полночь - time.Date нормализует перенос
// на следующую дату, как и округление шага у исходных потребителей.
func suggestionAt(date types.DateString, minute int) string {
	day, err := date.Time(time.UTC)
	if err != nil {
		return ""
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), 0, minute, 0, 0, time.UTC)
	return at.Format(domain.SuggestionFormat)
}
