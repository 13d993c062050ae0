package domain

// MenuItem позиция цифрового меню ресторана.
// Цена хранится в евроцентах, чтобы не возить float через слои.
type MenuItem struct {
	ID           int64
	RestaurantID int64
	Name         string
	PriceCents   int64
	Category     string
	Available    bool
}

// PriceEuros возвращает цену в евро для отдачи наружу
func (m *MenuItem) PriceEuros() float64 {
	return float64(m.PriceCents) / 100
}
