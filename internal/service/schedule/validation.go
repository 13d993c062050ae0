package schedule

import (
	"fmt"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/internal/service/schedule/models"
	"github.com/xalexyi/prenotazioni-ai/pkg/types"
)

// Вся валидация форм выполняется до открытия транзакции:
// битая строка не должна успеть удалить существующие окна.

func validateWeekday(weekday int) error {
	if weekday < domain.MinWeekday || weekday > domain.MaxWeekday {
		return fmt.Errorf("%w: weekday %d not in [%d,%d]", ErrInvalidWeekday, weekday, domain.MinWeekday, domain.MaxWeekday)
	}
	return nil
}

func validateDate(raw string) (types.DateString, error) {
	date := types.DateString(raw)
	if err := date.Validate(); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return date, nil
}

func validateWindows(inputs []models.WindowInput) ([]domain.Window, error) {
	windows := make([]domain.Window, 0, len(inputs))
	for _, in := range inputs {
		start := types.TimeString(in.Start)
		if err := start.Validate(); err != nil {
			return nil, fmt.Errorf("%w: start %q", ErrInvalidTimeFormat, in.Start)
		}
		end := types.TimeString(in.End)
		if err := end.Validate(); err != nil {
			return nil, fmt.Errorf("%w: end %q", ErrInvalidTimeFormat, in.End)
		}
		windows = append(windows, domain.Window{Start: start, End: end})
	}
	return windows, nil
}

func validateSettingsUpdate(req *models.UpdateSettingsRequest, merged *domain.Settings) error {
	if req.Timezone != nil {
		if _, err := merged.Location(); err != nil {
			return fmt.Errorf("%w: unknown timezone %q", ErrInvalidSettings, *req.Timezone)
		}
	}
	if merged.SlotStepMin < domain.MinSlotStepMin || merged.SlotStepMin > domain.MaxSlotStepMin {
		return fmt.Errorf("%w: slot_step_min %d not in [%d,%d]", ErrInvalidSettings, merged.SlotStepMin, domain.MinSlotStepMin, domain.MaxSlotStepMin)
	}
	if merged.LastOrderMin < domain.MinLastOrderMin || merged.LastOrderMin > domain.MaxLastOrderMin {
		return fmt.Errorf("%w: last_order_min %d not in [%d,%d]", ErrInvalidSettings, merged.LastOrderMin, domain.MinLastOrderMin, domain.MaxLastOrderMin)
	}
	if merged.MinParty < 1 || merged.MaxParty > domain.PartyHardLimit {
		return fmt.Errorf("%w: party bounds [%d,%d] out of range", ErrInvalidSettings, merged.MinParty, merged.MaxParty)
	}
	if merged.MinParty > merged.MaxParty {
		return fmt.Errorf("%w: min_party %d greater than max_party %d", ErrInvalidSettings, merged.MinParty, merged.MaxParty)
	}
	if merged.CapacityPerSlot < 0 {
		return fmt.Errorf("%w: capacity_per_slot %d is negative", ErrInvalidSettings, merged.CapacityPerSlot)
	}
	return nil
}
