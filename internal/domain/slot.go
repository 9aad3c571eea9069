package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AvailableSlot represents a free bookable time slot.
// Computed fresh on every request, never persisted.
type AvailableSlot struct {
	Date     time.Time
	Day      string // Название дня недели, например "Monday"
	FromTime types.TimeString
	ToTime   types.TimeString
}

// DateDisplay возвращает дату для отображения, например "October 15, 2025"
func (s *AvailableSlot) DateDisplay() string {
	return s.Date.Format("January 2, 2006")
}

// TimeDisplay возвращает интервал для отображения, например "09:00 - 09:30"
func (s *AvailableSlot) TimeDisplay() string {
	return s.FromTime.String() + " - " + s.ToTime.String()
}

// BookedSlotKey ключ занятого слота: дата + время начала
// Занятые слоты объединяются по всем видам бронирований,
// делящим один календарь
type BookedSlotKey struct {
	Date time.Time // Обнулённая до начала суток
	Time types.TimeString
}

// NewBookedSlotKey нормализует дату и строит ключ занятого слота
func NewBookedSlotKey(date time.Time, t types.TimeString) BookedSlotKey {
	return BookedSlotKey{
		Date: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Time: t,
	}
}
