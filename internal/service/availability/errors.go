package availability

import "errors"

var (
	// ErrInvalidWeekday возвращается при неизвестном имени дня недели
	ErrInvalidWeekday = errors.New("availability: invalid weekday")

	// ErrInvalidTimeRange возвращается, когда интервал некорректен (from >= to)
	ErrInvalidTimeRange = errors.New("availability: invalid time range")

	// ErrRangesOnUnavailableDay возвращается, когда для нерабочего дня переданы интервалы
	ErrRangesOnUnavailableDay = errors.New("availability: ranges on unavailable day")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
