package models

// ActiveResponse состояние голосовой линии ресторана
type ActiveResponse struct {
	Active   int  `json:"active"`
	Max      int  `json:"max"`
	Overload bool `json:"overload"`
}

// InboundRequest транскрипт входящего звонка
type InboundRequest struct {
	RestaurantID int64  `json:"restaurant_id"`
	CallID       string `json:"call_id"`
	CallerPhone  string `json:"caller_phone,omitempty"`
	CallerName   string `json:"caller_name,omitempty"`
	Transcript   string `json:"transcript"`
}

// InboundResponse итог обработки звонка.
// ReservationID заполнен при успехе; иначе Rejection описывает отказ
// движка проверки (с возможной подсказкой слота).
type InboundResponse struct {
	ReservationID int64      `json:"reservation_id,omitempty"`
	Date          string     `json:"date,omitempty"`
	Time          string     `json:"time,omitempty"`
	PartySize     int        `json:"party_size,omitempty"`
	Rejection     *Rejection `json:"rejection,omitempty"`
}

// Rejection отказ движка проверки
type Rejection struct {
	ErrorCode string `json:"error"`
	Reason    string `json:"reason,omitempty"`
	Suggested string `json:"suggested,omitempty"`
}
