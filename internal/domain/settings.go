package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BookingSettings глобальные настройки записи на приём (единственная запись)
type BookingSettings struct {
	ID               int64
	EnableScheduling bool

	WorkingStartTime types.TimeString
	WorkingEndTime   types.TimeString

	// Рабочие дни недели (чекбоксы)
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool

	DefaultSlotDurationMinutes int
	AdvanceBookingDays         int // Горизонт генерации слотов в днях
	MinBookingNoticeMinutes    int // Минимальное время до начала слота (может быть отрицательным)

	CompanyLocation *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkingDays возвращает список включенных рабочих дней
// Если ни один день не включен, возвращает дни по умолчанию (Пн-Пт)
func (s *BookingSettings) WorkingDays() []string {
	days := make([]string, 0, 7)

	flags := map[string]bool{
		"Monday":    s.Monday,
		"Tuesday":   s.Tuesday,
		"Wednesday": s.Wednesday,
		"Thursday":  s.Thursday,
		"Friday":    s.Friday,
		"Saturday":  s.Saturday,
		"Sunday":    s.Sunday,
	}

	for _, day := range Weekdays {
		if flags[day] {
			days = append(days, day)
		}
	}

	if len(days) == 0 {
		return DefaultWorkingDays
	}

	return days
}

// GlobalSchedule строит недельное расписание из глобального окна рабочих часов
func (s *BookingSettings) GlobalSchedule() WeekSchedule {
	start := s.WorkingStartTime
	end := s.WorkingEndTime

	if start.IsZero() {
		start = DefaultWorkingStartTime
	}
	if end.IsZero() {
		end = DefaultWorkingEndTime
	}

	schedule := make(WeekSchedule)
	for _, day := range s.WorkingDays() {
		schedule[day] = []TimeRange{{From: start, To: end}}
	}
	return schedule
}
