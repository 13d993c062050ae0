package validate_reservation

// Коды отказа. Это валидационные вердикты, а не ошибки: движок
// возвращает их в Result, не через error.
const (
	CodeBadDate         = "bad_date"
	CodeBadTime         = "bad_time"
	CodePartyOutOfRange = "party_out_of_range"
	CodeClosed          = "closed"
	CodeBadStep         = "bad_step"
	CodeOutsideHours    = "outside_hours"
)

// ReasonPastLastWindow дополнительный subcode для outside_hours
// без подсказки: время позже последнего окна дня
const ReasonPastLastWindow = "past_last_window"

// Request кандидат на бронь
type Request struct {
	RestaurantID int64
	Date         string
	Time         string
	PartySize    int
}

// Result вердикт проверки. При Ok=true остальные поля пустые.
// Suggested в формате "YYYY-MM-DDTHH:MM", заполняется только для
// bad_step и для outside_hours с будущим окном в тот же день.
type Result struct {
	Ok        bool
	ErrorCode string
	Reason    string
	Suggested string
}

func accept() Result {
	return Result{Ok: true}
}

func reject(code string) Result {
	return Result{ErrorCode: code}
}

func rejectWithReason(code, reason string) Result {
	return Result{ErrorCode: code, Reason: reason}
}

func rejectWithSuggestion(code, suggested string) Result {
	return Result{ErrorCode: code, Suggested: suggested}
}
