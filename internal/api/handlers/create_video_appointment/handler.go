package create_video_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	createVideoAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_video_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidDateFormat      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCompanyRequired        = "не указана компания"
	msgCompanyInvalid         = "неизвестная компания"
	msgCustomerNameRequired   = "не указано имя клиента"
	msgPhoneRequired          = "не указан номер телефона"
	msgEmailRequired          = "не указан email"
	msgEmailInvalid           = "некорректный формат email"
	msgLocationRequired       = "не указано место встречи"
	msgLocationInvalid        = "неизвестное место встречи"
	msgTypeRequired           = "не указан тип заявки"
	msgTypeInvalid            = "неизвестный тип заявки"
	msgIndustryRequired       = "не указана индустрия"
	msgRequirementsRequired   = "не описаны требования к видео"
	msgBudgetRequired         = "не указан бюджет"
	msgBrandNameRequired      = "не указано название бренда"
	msgAcknowledgmentRequired = "необходимо подтвердить условия работы"
	msgDateRequired           = "не указана дата записи"
	msgDateInPast             = "дата записи в прошлом"
	msgTimeRequired           = "не указано время записи"
	msgTimeInvalid            = "некорректный формат времени, ожидается HH:MM"

	msgCreated = "заявка на видеопродакшн принята"
)

type Handler struct {
	useCase CreateVideoAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateVideoAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/video-appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateVideoAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /video-appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /video-appointments - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgTimeInvalid)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			h.logger.Warn("POST /video-appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msg)
			return
		}

		h.logger.Error("POST /video-appointments - Failed to create appointment: email=%s, error=%v", req.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /video-appointments - Appointment created: id=%d, reference=%s", result.ID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, CreateVideoAppointmentResponse{
		Success:       true,
		Message:       msgCreated,
		AppointmentID: result.Reference,
	})
}

// validationMessage сопоставляет ошибки валидации use case с сообщениями API
func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, createVideoAppointment.ErrCompanyRequired):
		return msgCompanyRequired, true
	case errors.Is(err, createVideoAppointment.ErrCompanyInvalid):
		return msgCompanyInvalid, true
	case errors.Is(err, createVideoAppointment.ErrCustomerNameRequired):
		return msgCustomerNameRequired, true
	case errors.Is(err, createVideoAppointment.ErrPhoneRequired):
		return msgPhoneRequired, true
	case errors.Is(err, createVideoAppointment.ErrEmailRequired):
		return msgEmailRequired, true
	case errors.Is(err, createVideoAppointment.ErrEmailInvalid):
		return msgEmailInvalid, true
	case errors.Is(err, createVideoAppointment.ErrLocationRequired):
		return msgLocationRequired, true
	case errors.Is(err, createVideoAppointment.ErrLocationInvalid):
		return msgLocationInvalid, true
	case errors.Is(err, createVideoAppointment.ErrTypeRequired):
		return msgTypeRequired, true
	case errors.Is(err, createVideoAppointment.ErrTypeInvalid):
		return msgTypeInvalid, true
	case errors.Is(err, createVideoAppointment.ErrIndustryRequired):
		return msgIndustryRequired, true
	case errors.Is(err, createVideoAppointment.ErrRequirementsRequired):
		return msgRequirementsRequired, true
	case errors.Is(err, createVideoAppointment.ErrBudgetRequired):
		return msgBudgetRequired, true
	case errors.Is(err, createVideoAppointment.ErrBrandNameRequired):
		return msgBrandNameRequired, true
	case errors.Is(err, createVideoAppointment.ErrAcknowledgmentRequired):
		return msgAcknowledgmentRequired, true
	case errors.Is(err, createVideoAppointment.ErrDateRequired):
		return msgDateRequired, true
	case errors.Is(err, createVideoAppointment.ErrDateInPast):
		return msgDateInPast, true
	case errors.Is(err, createVideoAppointment.ErrTimeRequired):
		return msgTimeRequired, true
	case errors.Is(err, createVideoAppointment.ErrTimeInvalid):
		return msgTimeInvalid, true
	}
	return "", false
}
