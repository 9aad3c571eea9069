package create_video_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createVideoAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_video_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateVideoAppointmentRequest HTTP request model
type CreateVideoAppointmentRequest struct {
	Company      string `json:"company"`
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`

	AppointmentType string `json:"appointmentType"` // "New Customer" / "Current Active Client"

	// Поля варианта New Customer
	Industry     *string `json:"industry,omitempty"`
	Service      *string `json:"service,omitempty"`
	Requirements *string `json:"requirements,omitempty"`
	Budget       *string `json:"budget,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	References   *string `json:"references,omitempty"`

	// Поля варианта Current Active Client
	BrandName        *string `json:"brandName,omitempty"`
	Acknowledgment   bool    `json:"acknowledgment"`
	ClientReferences *string `json:"clientReferences,omitempty"`

	MeetingLocation string `json:"meetingLocation,omitempty"`

	GoogleLocation *string `json:"googleLocation,omitempty"`
	City           *string `json:"city,omitempty"`
	ZoneNumber     *string `json:"zoneNumber,omitempty"`
	StreetNumber   *string `json:"streetNumber,omitempty"`
	BuildingNumber *string `json:"buildingNumber,omitempty"`

	BookingDate string `json:"bookingDate"` // "2025-10-15"
	BookingTime string `json:"bookingTime"` // "10:00"
}

// CreateVideoAppointmentResponse HTTP response model
type CreateVideoAppointmentResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AppointmentID string `json:"appointmentId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateVideoAppointmentRequest) ToUseCaseRequest() (*createVideoAppointment.Request, error) {
	req := &createVideoAppointment.Request{
		Company:          r.Company,
		CustomerName:     r.CustomerName,
		PhoneNumber:      r.PhoneNumber,
		Email:            r.Email,
		AppointmentType:  r.AppointmentType,
		Industry:         r.Industry,
		Service:          r.Service,
		Requirements:     r.Requirements,
		Budget:           r.Budget,
		Notes:            r.Notes,
		References:       r.References,
		BrandName:        r.BrandName,
		Acknowledgment:   r.Acknowledgment,
		ClientReferences: r.ClientReferences,
		MeetingLocation:  r.MeetingLocation,
		GoogleLocation:   r.GoogleLocation,
		City:             r.City,
		ZoneNumber:       r.ZoneNumber,
		StreetNumber:     r.StreetNumber,
		BuildingNumber:   r.BuildingNumber,
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
