package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerName string  `json:"customerName"`
	PhoneNumber  string  `json:"phoneNumber"`
	Email        string  `json:"email"`
	ServiceIDs   []int64 `json:"serviceIds"`

	MeetingLocation string `json:"meetingLocation"` // "Our Location" / "Customer Location"

	Location        *string `json:"location,omitempty"`
	StreetName      *string `json:"streetName,omitempty"`
	BuildingName    *string `json:"buildingName,omitempty"`
	ApartmentNumber *string `json:"apartmentNumber,omitempty"`

	BookingDate string `json:"bookingDate"` // "2025-10-15"
	BookingTime string `json:"bookingTime"` // "10:00"
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AppointmentID string `json:"appointmentId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустые дата и время проходят как нулевые значения: их обязательность
// проверяет use case, чтобы сохранить порядок ошибок валидации
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	req := &createAppointment.Request{
		CustomerName:    r.CustomerName,
		PhoneNumber:     r.PhoneNumber,
		Email:           r.Email,
		ServiceIDs:      r.ServiceIDs,
		MeetingLocation: r.MeetingLocation,
		Location:        r.Location,
		StreetName:      r.StreetName,
		BuildingName:    r.BuildingName,
		ApartmentNumber: r.ApartmentNumber,
	}

	if r.BookingDate != "" {
		bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
		if err != nil {
			return nil, err
		}
		req.BookingDate = bookingDate
	}

	if r.BookingTime != "" {
		bookingTime, err := types.NewTimeStringFromString(r.BookingTime)
		if err != nil {
			return nil, err
		}
		req.BookingTime = bookingTime
	}

	return req, nil
}
