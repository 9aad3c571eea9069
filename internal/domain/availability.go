package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Weekdays порядок дней недели для отображения настроек доступности
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DefaultWorkingDays дни недели по умолчанию, когда ни один день не настроен
var DefaultWorkingDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
}

// IsValidWeekday проверяет, что имя дня недели корректно
func IsValidWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// TimeRange рабочий интервал внутри дня
// Инвариант: From строго раньше To
type TimeRange struct {
	From types.TimeString
	To   types.TimeString
}

// IsValid проверяет инвариант From < To
func (r TimeRange) IsValid() bool {
	return !r.From.IsZero() && !r.To.IsZero() && r.From.IsBefore(r.To)
}

// DayAvailability настройка доступности пользователя на день недели
type DayAvailability struct {
	ID          int64
	UserID      int64
	DayOfWeek   string
	IsAvailable bool
	Ranges      []TimeRange
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WeekSchedule расписание на неделю: день недели -> рабочие интервалы
// Дни без интервалов считаются нерабочими
// Интервалы одного дня могут быть дизъюнктными (несколько смен)
type WeekSchedule map[string][]TimeRange

// RangesFor возвращает интервалы для дня недели
func (s WeekSchedule) RangesFor(weekday time.Weekday) []TimeRange {
	return s[weekday.String()]
}

// IsEmpty проверяет, что расписание не содержит ни одного интервала
func (s WeekSchedule) IsEmpty() bool {
	for _, ranges := range s {
		if len(ranges) > 0 {
			return false
		}
	}
	return true
}
