package create_video_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание видео-бронирования
type Request struct {
	Company      string // "Easy AI" или "Directlines" (алиасы нормализуются)
	CustomerName string
	PhoneNumber  string
	Email        string

	AppointmentType string // "New Customer" или "Current Active Client"

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

	MeetingLocation string

	// Адрес клиента
	GoogleLocation *string
	City           *string
	ZoneNumber     *string
	StreetNumber   *string
	BuildingNumber *string

	BookingDate time.Time
	BookingTime types.TimeString
}

// Response модель ответа с созданным видео-бронированием
type Response struct {
	ID          int64
	Reference   string // Публичный идентификатор вида "VPA-2025-00042"
	Status      string
	BookingDate time.Time
	BookingTime types.TimeString
	CreatedAt   time.Time
}
