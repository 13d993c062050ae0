package voice

import "errors"

var (
	// ErrLineBusy возвращается, когда все голосовые слоты ресторана заняты
	ErrLineBusy = errors.New("voice.service: all call slots busy")

	// ErrUnparsable возвращается, когда из фразы не удалось извлечь бронь
	ErrUnparsable = errors.New("voice.service: could not parse transcript")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("voice.service: internal error")
)
