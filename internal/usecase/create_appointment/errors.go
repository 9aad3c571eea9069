package create_appointment

import "errors"

var (
	// ErrCustomerNameRequired возвращается, когда не указано имя клиента
	ErrCustomerNameRequired = errors.New("create_appointment: customer name is required")

	// ErrPhoneRequired возвращается, когда не указан номер телефона
	ErrPhoneRequired = errors.New("create_appointment: phone number is required")

	// ErrEmailRequired возвращается, когда не указан email
	ErrEmailRequired = errors.New("create_appointment: email is required")

	// ErrEmailInvalid возвращается при некорректном формате email
	ErrEmailInvalid = errors.New("create_appointment: email format is invalid")

	// ErrServicesRequired возвращается, когда не выбрана ни одна услуга
	ErrServicesRequired = errors.New("create_appointment: at least one service is required")

	// ErrServiceNotFound возвращается, когда выбранная услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrLocationRequired возвращается, когда не указано место встречи
	ErrLocationRequired = errors.New("create_appointment: meeting location is required")

	// ErrLocationInvalid возвращается при неизвестном месте встречи
	ErrLocationInvalid = errors.New("create_appointment: unknown meeting location")

	// ErrDateRequired возвращается, когда не указана дата бронирования
	ErrDateRequired = errors.New("create_appointment: booking date is required")

	// ErrDateInPast возвращается, когда дата бронирования в прошлом
	ErrDateInPast = errors.New("create_appointment: booking date is in the past")

	// ErrTimeRequired возвращается, когда не указано время бронирования
	ErrTimeRequired = errors.New("create_appointment: booking time is required")

	// ErrTimeInvalid возвращается при некорректном формате времени
	ErrTimeInvalid = errors.New("create_appointment: booking time format is invalid")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
