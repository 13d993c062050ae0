package domain

import "time"

// Settings настройки ресторана, одна строка на ресторан.
// Если строки нет, действуют дефолты.
type Settings struct {
	RestaurantID    int64
	Timezone        string
	SlotStepMin     int
	LastOrderMin    int
	MinParty        int
	MaxParty        int
	CapacityPerSlot int // хранится и отдается, но движком не применяется
}

// DefaultSettings возвращает настройки по умолчанию
func DefaultSettings(restaurantID int64) *Settings {
	return &Settings{
		RestaurantID:    restaurantID,
		Timezone:        DefaultTimezone,
		SlotStepMin:     DefaultSlotStepMin,
		LastOrderMin:    DefaultLastOrderMin,
		MinParty:        DefaultMinParty,
		MaxParty:        DefaultMaxParty,
		CapacityPerSlot: DefaultCapacityPerSlot,
	}
}

// Location резолвит IANA-таймзону ресторана
func (s *Settings) Location() (*time.Location, error) {
	return time.LoadLocation(s.Timezone)
}
