package models

// Request модели

// WindowInput одно окно "HH:MM"-"HH:MM" из админки
type WindowInput struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ReplaceWeeklyRequest замена окон одного дня недели
type ReplaceWeeklyRequest struct {
	RestaurantID int64
	Weekday      int
	Windows      []WindowInput
}

// ReplaceWeeklyBulkRequest атомарная замена всей недели.
// Ключи карты - weekday 0..6; отсутствующий ключ означает
// "закрыто в этот день" (все окна удаляются).
type ReplaceWeeklyBulkRequest struct {
	RestaurantID int64
	Week         map[int][]WindowInput
}

// UpsertSpecialDayRequest замена override'а на дату
type UpsertSpecialDayRequest struct {
	RestaurantID int64
	Date         string
	IsClosed     bool
	Windows      []WindowInput
}

// UpdateSettingsRequest частичное обновление настроек.
// Обновляются только переданные поля.
type UpdateSettingsRequest struct {
	RestaurantID    int64
	Timezone        *string `json:"tz,omitempty"`
	SlotStepMin     *int    `json:"slot_step_min,omitempty"`
	LastOrderMin    *int    `json:"last_order_min,omitempty"`
	MinParty        *int    `json:"min_party,omitempty"`
	MaxParty        *int    `json:"max_party,omitempty"`
	CapacityPerSlot *int    `json:"capacity_per_slot,omitempty"`
}

// Response модели

// SettingsResponse настройки ресторана
type SettingsResponse struct {
	Timezone        string `json:"tz"`
	SlotStepMin     int    `json:"slot_step_min"`
	LastOrderMin    int    `json:"last_order_min"`
	MinParty        int    `json:"min_party"`
	MaxParty        int    `json:"max_party"`
	CapacityPerSlot int    `json:"capacity_per_slot"`
}

// WindowResponse окно в ответе
type WindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SpecialDayResponse override на дату
type SpecialDayResponse struct {
	Date     string           `json:"date"`
	IsClosed bool             `json:"is_closed"`
	Windows  []WindowResponse `json:"windows"`
}

// StateResponse полный снимок расписания ресторана
type StateResponse struct {
	Weekly      map[int][]WindowResponse `json:"weekly"`
	SpecialDays []SpecialDayResponse     `json:"special_days"`
	Settings    SettingsResponse         `json:"settings"`
}
