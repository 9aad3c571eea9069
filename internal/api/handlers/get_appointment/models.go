package get_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentResponse HTTP модель бронирования для публичного поиска по номеру
// Персональные данные клиента наружу не отдаются
type AppointmentResponse struct {
	Reference       string  `json:"reference"`
	Status          string  `json:"status"`
	BookingDate     string  `json:"bookingDate"` // "2025-10-15"
	BookingTime     string  `json:"bookingTime"` // "14:30"
	MeetingLocation string  `json:"meetingLocation"`
	ServiceIDs      []int64 `json:"serviceIds"`
	CreatedAt       string  `json:"createdAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		Reference:       appt.Reference,
		Status:          string(appt.Status),
		BookingDate:     appt.BookingDate.Format(domain.DateFormat),
		BookingTime:     appt.BookingTime.String(),
		MeetingLocation: string(appt.MeetingLocation),
		ServiceIDs:      appt.ServiceIDs,
		CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
	}
}
