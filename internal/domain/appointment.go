package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// MeetingLocation place where the appointment takes place
type MeetingLocation string

const (
	LocationOur      MeetingLocation = "Our Location"
	LocationCustomer MeetingLocation = "Customer Location"
)

// Appointment represents a general guest appointment booking
type Appointment struct {
	ID           int64
	Reference    string // Публичный идентификатор вида "APT-2025-00042"
	CustomerName string
	PhoneNumber  string
	Email        string
	ServiceIDs   []int64

	MeetingLocation MeetingLocation

	// Адрес клиента (для Customer Location)
	Location        *string
	StreetName      *string
	BuildingName    *string
	ApartmentNumber *string

	// Денормализованный адрес компании (для Our Location)
	CompanyLocation *string

	BookingDate time.Time
	BookingTime types.TimeString
	Status      AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still blocks its time slot
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsValidStatus проверяет, что статус известен
func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}
