package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Default configuration values
const (
	DefaultSlotDurationMinutes     = 60
	DefaultAdvanceBookingDays      = 7
	DefaultMinBookingNoticeMinutes = -5 // 5-минутный допуск для текущей минуты
)

// Значения рабочих часов по умолчанию
var (
	DefaultWorkingStartTime = types.TimeString("09:00")
	DefaultWorkingEndTime   = types.TimeString("18:00")
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 часов
	MinAdvanceBookingDays  = 1
	MaxAdvanceBookingDays  = 365
	MaxFieldLength         = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, блокирующие слот в календаре
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// Префиксы публичных идентификаторов
const (
	AppointmentReferencePrefix      = "APT"
	VideoAppointmentReferencePrefix = "VPA"
)
