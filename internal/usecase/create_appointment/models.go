package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName string
	PhoneNumber  string
	Email        string
	ServiceIDs   []int64

	MeetingLocation string // "Our Location" или "Customer Location"

	// Адрес клиента (используется при Customer Location)
	Location        *string
	StreetName      *string
	BuildingName    *string
	ApartmentNumber *string

	BookingDate time.Time        // Дата бронирования (без времени)
	BookingTime types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	Reference   string // Публичный идентификатор вида "APT-2025-00042"
	Status      string
	BookingDate time.Time
	BookingTime types.TimeString
	CreatedAt   time.Time
}
