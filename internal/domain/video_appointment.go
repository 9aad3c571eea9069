package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentType discriminator for the video production appointment variant
type AppointmentType string

const (
	TypeNewCustomer  AppointmentType = "New Customer"
	TypeActiveClient AppointmentType = "Current Active Client"
)

// Video production companies
const (
	CompanyEasyAI      = "Easy AI"
	CompanyDirectlines = "Directlines"
)

// VideoAppointment represents a video production appointment request.
// Common intake fields plus a tagged variant: the AppointmentType
// discriminator selects which of the type-specific field groups is required.
type VideoAppointment struct {
	ID           int64
	Reference    string // Публичный идентификатор вида "VPA-2025-00042"
	Company      string
	CustomerName string
	PhoneNumber  string
	Email        string

	AppointmentType AppointmentType

	// Поля варианта New Customer
	Industry     *string
	Service      *string
	Requirements *string
	Budget       *string
	Notes        *string
	References   *string

	// Поля варианта Current Active Client
	BrandName        *string
	Acknowledgment   bool
	ClientReferences *string

	MeetingLocation MeetingLocation

	// Адрес клиента
	GoogleLocation  *string
	City            *string
	ZoneNumber      *string
	StreetNumber    *string
	BuildingNumber  *string
	CompanyLocation *string

	BookingDate time.Time
	BookingTime types.TimeString
	Status      AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still blocks its time slot
func (a *VideoAppointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// NormalizeCompany приводит исторические алиасы названия компании к каноническому
func NormalizeCompany(company string) string {
	if company == "" || company == "Direct Line" {
		return CompanyDirectlines
	}
	return company
}

// IsValidCompany проверяет, что компания поддерживается
func IsValidCompany(company string) bool {
	return company == CompanyEasyAI || company == CompanyDirectlines
}
