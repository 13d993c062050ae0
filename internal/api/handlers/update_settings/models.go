package update_settings

import "github.com/xalexyi/prenotazioni-ai/internal/service/schedule/models"

// UpdateSettingsRequest HTTP request model.
// Все поля опциональны - обновляются только переданные значения.
type UpdateSettingsRequest struct {
	Timezone        *string `json:"tz,omitempty"`
	SlotStepMin     *int    `json:"slot_step_min,omitempty"`
	LastOrderMin    *int    `json:"last_order_min,omitempty"`
	MinParty        *int    `json:"min_party,omitempty"`
	MaxParty        *int    `json:"max_party,omitempty"`
	CapacityPerSlot *int    `json:"capacity_per_slot,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSettingsRequest) ToServiceRequest(restaurantID int64) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		RestaurantID:    restaurantID,
		Timezone:        r.Timezone,
		SlotStepMin:     r.SlotStepMin,
		LastOrderMin:    r.LastOrderMin,
		MinParty:        r.MinParty,
		MaxParty:        r.MaxParty,
		CapacityPerSlot: r.CapacityPerSlot,
	}
}
