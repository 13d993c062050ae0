package rules

import "errors"

var (
	// ErrLoadRules возвращается при ошибке чтения правил из хранилища
	ErrLoadRules = errors.New("rules.service: failed to load rules")

	// ErrCorruptRuleData возвращается, когда в хранилище лежит строка,
	// которую нельзя интерпретировать (битое время, окно без границ).
	// Такое состояние не маскируется под "закрыто" - это ошибка данных.
	ErrCorruptRuleData = errors.New("rules.service: corrupt rule data")
)
