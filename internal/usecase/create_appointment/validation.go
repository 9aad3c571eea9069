package create_appointment

import (
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRequest валидирует входные данные запроса
// Поля проверяются в фиксированном порядке, возвращается первая ошибка
func validateRequest(req *Request, now time.Time) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return ErrCustomerNameRequired
	}

	if strings.TrimSpace(req.PhoneNumber) == "" {
		return ErrPhoneRequired
	}

	if strings.TrimSpace(req.Email) == "" {
		return ErrEmailRequired
	}

	if !emailPattern.MatchString(req.Email) {
		return ErrEmailInvalid
	}

	if len(req.ServiceIDs) == 0 {
		return ErrServicesRequired
	}

	if req.MeetingLocation == "" {
		return ErrLocationRequired
	}

	location := domain.MeetingLocation(req.MeetingLocation)
	if location != domain.LocationOur && location != domain.LocationCustomer {
		return ErrLocationInvalid
	}

	if req.BookingDate.IsZero() {
		return ErrDateRequired
	}

	if isDateInPast(req.BookingDate, now) {
		return ErrDateInPast
	}

	if req.BookingTime.IsZero() {
		return ErrTimeRequired
	}

	if err := req.BookingTime.Validate(); err != nil {
		return ErrTimeInvalid
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
