package rules

import (
	"context"
	"errors"
	"fmt"
	"sort"

	scheduleRepo "github.com/xalexyi/prenotazioni-ai/internal/infra/storage/schedule"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/pkg/types"
)

// Loader собирает EffectiveRules ресторана из сырых строк хранилища.
// Снимок строится заново на каждый запрос, кэша нет: правила меняются
// редко, а stale-расписание при проверке брони дороже лишнего select'а.
type Loader struct {
	repo   ScheduleRepository
	logger Logger
}

// NewLoader создает новый загрузчик правил
func NewLoader(repo ScheduleRepository, logger Logger) *Loader {
	return &Loader{
		repo:   repo,
		logger: logger,
	}
}

// Load загружает действующие правила ресторана
func (l *Loader) Load(ctx context.Context, restaurantID int64) (*domain.EffectiveRules, error) {
	settings, err := l.repo.GetSettings(ctx, restaurantID)
	if errors.Is(err, scheduleRepo.ErrSettingsNotFound) {
		settings = domain.DefaultSettings(restaurantID)
	} else if err != nil {
		l.logger.Error("rules.Load: failed to get settings for restaurant %d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Load - get settings: %v", ErrLoadRules, err)
	}

	weeklyRows, err := l.repo.GetWeeklyWindows(ctx, restaurantID)
	if err != nil {
		l.logger.Error("rules.Load: failed to get weekly windows for restaurant %d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Load - get weekly windows: %v", ErrLoadRules, err)
	}

	specialRows, err := l.repo.GetSpecialDayRows(ctx, restaurantID)
	if err != nil {
		l.logger.Error("rules.Load: failed to get special days for restaurant %d: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: Load - get special days: %v", ErrLoadRules, err)
	}

	effective := &domain.EffectiveRules{
		Special:  make(map[types.DateString]domain.SpecialEntry),
		Settings: settings,
	}

	for _, row := range weeklyRows {
		if row.Weekday < domain.MinWeekday || row.Weekday > domain.MaxWeekday {
			return nil, fmt.Errorf("%w: Load - weekly window id=%d has weekday %d", ErrCorruptRuleData, row.ID, row.Weekday)
		}
		window, err := toMinuteWindow(&row.Start, &row.End)
		if err != nil {
			return nil, fmt.Errorf("%w: Load - weekly window id=%d: %v", ErrCorruptRuleData, row.ID, err)
		}
		effective.Weekly[row.Weekday] = append(effective.Weekly[row.Weekday], window)
	}

	for _, row := range specialRows {
		if err := row.Date.Validate(); err != nil {
			return nil, fmt.Errorf("%w: Load - special day id=%d has bad date %q", ErrCorruptRuleData, row.ID, row.Date)
		}

		entry := effective.Special[row.Date]
		if row.IsClosed {
			// маркер закрытия вытесняет любые окна этой даты
			entry.Closed = true
			entry.Windows = nil
			effective.Special[row.Date] = entry
			continue
		}
		if entry.Closed {
			continue
		}

		if row.Start == nil || row.End == nil {
			return nil, fmt.Errorf("%w: Load - special day id=%d is open but has no window bounds", ErrCorruptRuleData, row.ID)
		}
		window, err := toMinuteWindow(row.Start, row.End)
		if err != nil {
			return nil, fmt.Errorf("%w: Load - special day id=%d: %v", ErrCorruptRuleData, row.ID, err)
		}
		entry.Windows = append(entry.Windows, window)
		effective.Special[row.Date] = entry
	}

	for weekday := range effective.Weekly {
		sortWindows(effective.Weekly[weekday])
	}
	for date, entry := range effective.Special {
		sortWindows(entry.Windows)
		effective.Special[date] = entry
	}

	return effective, nil
}

func toMinuteWindow(start, end *types.TimeString) (domain.MinuteWindow, error) {
	if start == nil || end == nil {
		return domain.MinuteWindow{}, fmt.Errorf("window bounds are not set")
	}
	startMin, err := start.MinuteOfDay()
	if err != nil {
		return domain.MinuteWindow{}, fmt.Errorf("bad start time %q: %v", *start, err)
	}
	endMin, err := end.MinuteOfDay()
	if err != nil {
		return domain.MinuteWindow{}, fmt.Errorf("bad end time %q: %v", *end, err)
	}
	return domain.MinuteWindow{StartMin: startMin, EndMin: endMin}, nil
}

func sortWindows(windows []domain.MinuteWindow) {
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].StartMin < windows[j].StartMin
	})
}
