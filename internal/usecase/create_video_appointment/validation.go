package create_video_appointment

import (
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRequest валидирует входные данные запроса
// Сначала общие поля, затем поля выбранного варианта; возвращается первая ошибка
// Компания в запросе должна быть уже нормализована
func validateRequest(req *Request, now time.Time) error {
	if req.Company == "" {
		return ErrCompanyRequired
	}

	if !domain.IsValidCompany(req.Company) {
		return ErrCompanyInvalid
	}

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

	if req.MeetingLocation == "" {
		return ErrLocationRequired
	}

	location := domain.MeetingLocation(req.MeetingLocation)
	if location != domain.LocationOur && location != domain.LocationCustomer {
		return ErrLocationInvalid
	}

	if req.AppointmentType == "" {
		return ErrTypeRequired
	}

	switch domain.AppointmentType(req.AppointmentType) {
	case domain.TypeNewCustomer:
		if err := validateNewCustomer(req); err != nil {
			return err
		}
	case domain.TypeActiveClient:
		if err := validateActiveClient(req); err != nil {
			return err
		}
	default:
		return ErrTypeInvalid
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

// validateNewCustomer проверяет обязательные поля варианта New Customer
func validateNewCustomer(req *Request) error {
	if isBlank(req.Industry) {
		return ErrIndustryRequired
	}
	if isBlank(req.Requirements) {
		return ErrRequirementsRequired
	}
	if isBlank(req.Budget) {
		return ErrBudgetRequired
	}
	return nil
}

// validateActiveClient проверяет обязательные поля варианта Current Active Client
func validateActiveClient(req *Request) error {
	if isBlank(req.BrandName) {
		return ErrBrandNameRequired
	}
	if !req.Acknowledgment {
		return ErrAcknowledgmentRequired
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
