package domain

// Default settings values
const (
	DefaultTimezone        = "Europe/Rome"
	DefaultSlotStepMin     = 15
	DefaultLastOrderMin    = 15
	DefaultMinParty        = 1
	DefaultMaxParty        = 12
	DefaultCapacityPerSlot = 6
)

// Business validation constants
const (
	MinWeekday = 0 // понедельник
	MaxWeekday = 6 // воскресенье

	MinSlotStepMin  = 0
	MaxSlotStepMin  = 240
	MinLastOrderMin = 0
	MaxLastOrderMin = 240
	PartyHardLimit  = 100

	MaxNotesLength        = 500
	MaxCustomerNameLength = 120
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// SuggestionFormat формат подсказки альтернативного слота
	SuggestionFormat = "2006-01-02T15:04"
)
