package get_time_slots

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	// Отсутствие настроек или расписания НЕ ошибка: это пустой результат
	ErrInternal = errors.New("get_time_slots: internal error")
)
