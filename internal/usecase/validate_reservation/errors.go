package validate_reservation

import "errors"

// ErrRulesUnavailable возвращается, когда правила ресторана не удалось
// загрузить (ошибка хранилища или битые данные). Это не валидационный
// отказ и не должен маскироваться под "closed".
var ErrRulesUnavailable = errors.New("validate_reservation.usecase: rules unavailable")
