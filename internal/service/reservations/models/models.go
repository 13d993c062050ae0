package models

// ListRequest параметры списка броней
type ListRequest struct {
	RestaurantID int64
	Date         string // конкретный день YYYY-MM-DD, опционально
	SinceDate    string // нижняя граница даты, опционально
	Query        string // поиск по имени/телефону/заметкам
	Limit        uint64 // 0 = дефолт
}

// ReservationResponse бронь в ответе API
type ReservationResponse struct {
	ID            int64   `json:"id"`
	RestaurantID  int64   `json:"restaurant_id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	PartySize     int     `json:"party_size"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	Source        string  `json:"source"`
	CreatedAt     string  `json:"created_at"`
}
