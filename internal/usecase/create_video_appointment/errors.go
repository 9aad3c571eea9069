package create_video_appointment

import "errors"

var (
	// ErrCompanyRequired возвращается, когда не указана компания
	ErrCompanyRequired = errors.New("create_video_appointment: company is required")

	// ErrCompanyInvalid возвращается при неизвестной компании
	ErrCompanyInvalid = errors.New("create_video_appointment: unknown company")

	// ErrCustomerNameRequired возвращается, когда не указано имя клиента
	ErrCustomerNameRequired = errors.New("create_video_appointment: customer name is required")

	// ErrPhoneRequired возвращается, когда не указан номер телефона
	ErrPhoneRequired = errors.New("create_video_appointment: phone number is required")

	// ErrEmailRequired возвращается, когда не указан email
	ErrEmailRequired = errors.New("create_video_appointment: email is required")

	// ErrEmailInvalid возвращается при некорректном формате email
	ErrEmailInvalid = errors.New("create_video_appointment: email format is invalid")

	// ErrLocationRequired возвращается, когда не указано место встречи
	ErrLocationRequired = errors.New("create_video_appointment: meeting location is required")

	// ErrLocationInvalid возвращается при неизвестном месте встречи
	ErrLocationInvalid = errors.New("create_video_appointment: unknown meeting location")

	// ErrTypeRequired возвращается, когда не указан тип бронирования
	ErrTypeRequired = errors.New("create_video_appointment: appointment type is required")

	// ErrTypeInvalid возвращается при неизвестном типе бронирования
	ErrTypeInvalid = errors.New("create_video_appointment: unknown appointment type")

	// ErrIndustryRequired возвращается, когда новый клиент не указал индустрию
	ErrIndustryRequired = errors.New("create_video_appointment: industry is required")

	// ErrRequirementsRequired возвращается, когда новый клиент не описал требования
	ErrRequirementsRequired = errors.New("create_video_appointment: requirements are required")

	// ErrBudgetRequired возвращается, когда новый клиент не указал бюджет
	ErrBudgetRequired = errors.New("create_video_appointment: budget is required")

	// ErrBrandNameRequired возвращается, когда действующий клиент не указал бренд
	ErrBrandNameRequired = errors.New("create_video_appointment: brand name is required")

	// ErrAcknowledgmentRequired возвращается, когда действующий клиент не подтвердил условия
	ErrAcknowledgmentRequired = errors.New("create_video_appointment: acknowledgment is required")

	// ErrDateRequired возвращается, когда не указана дата бронирования
	ErrDateRequired = errors.New("create_video_appointment: booking date is required")

	// ErrDateInPast возвращается, когда дата бронирования в прошлом
	ErrDateInPast = errors.New("create_video_appointment: booking date is in the past")

	// ErrTimeRequired возвращается, когда не указано время бронирования
	ErrTimeRequired = errors.New("create_video_appointment: booking time is required")

	// ErrTimeInvalid возвращается при некорректном формате времени
	ErrTimeInvalid = errors.New("create_video_appointment: booking time format is invalid")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_video_appointment: internal error")
)
