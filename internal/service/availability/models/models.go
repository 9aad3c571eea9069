package models

// TimeRangeModel рабочий интервал внутри дня, времена в формате HH:MM
type TimeRangeModel struct {
	FromTime string `json:"fromTime"`
	ToTime   string `json:"toTime"`
}

// DayAvailabilityModel настройка доступности на день недели
type DayAvailabilityModel struct {
	DayOfWeek   string           `json:"dayOfWeek"`
	IsAvailable bool             `json:"isAvailable"`
	TimeRanges  []TimeRangeModel `json:"timeRanges"`
}

// SaveAvailabilityRequest запрос на сохранение недельной доступности
// Передаются только изменяемые дни, остальные не затрагиваются
type SaveAvailabilityRequest struct {
	UserID int64                  `json:"-"`
	Days   []DayAvailabilityModel `json:"days"`
}

// AvailabilityResponse ответ с недельной доступностью пользователя
// Всегда содержит все семь дней недели
type AvailabilityResponse struct {
	UserID int64                  `json:"userId"`
	Days   []DayAvailabilityModel `json:"days"`
}
