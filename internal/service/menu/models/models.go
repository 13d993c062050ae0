package models

// CreateItemRequest новая позиция меню
type CreateItemRequest struct {
	RestaurantID int64
	Name         string  `json:"name"`
	PriceEuros   float64 `json:"price"`
	Category     string  `json:"category"`
	Available    *bool   `json:"available,omitempty"` // nil = true
}

// ItemResponse позиция меню в ответе API
type ItemResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Available bool    `json:"available"`
}

// MenuResponse меню, сгруппированное по категориям
type MenuResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryResponse одна категория меню
type CategoryResponse struct {
	Name  string         `json:"name"`
	Items []ItemResponse `json:"items"`
}
