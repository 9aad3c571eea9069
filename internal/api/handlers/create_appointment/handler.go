package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateFormat    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCustomerNameRequired = "не указано имя клиента"
	msgPhoneRequired        = "не указан номер телефона"
	msgEmailRequired        = "не указан email"
	msgEmailInvalid         = "некорректный формат email"
	msgServicesRequired     = "не выбрана ни одна услуга"
	msgServiceNotFound      = "выбранная услуга не найдена"
	msgLocationRequired     = "не указано место встречи"
	msgLocationInvalid      = "неизвестное место встречи"
	msgDateRequired         = "не указана дата записи"
	msgDateInPast           = "дата записи в прошлом"
	msgTimeRequired         = "не указано время записи"
	msgTimeInvalid          = "некорректный формат времени, ожидается HH:MM"

	msgCreated = "заявка на запись принята"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
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
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msg)
			return
		}

		h.logger.Error("POST /appointments - Failed to create appointment: email=%s, error=%v", req.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%d, reference=%s", result.ID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, CreateAppointmentResponse{
		Success:       true,
		Message:       msgCreated,
		AppointmentID: result.Reference,
	})
}

// validationMessage сопоставляет ошибки валидации use case с сообщениями API
func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, createAppointment.ErrCustomerNameRequired):
		return msgCustomerNameRequired, true
	case errors.Is(err, createAppointment.ErrPhoneRequired):
		return msgPhoneRequired, true
	case errors.Is(err, createAppointment.ErrEmailRequired):
		return msgEmailRequired, true
	case errors.Is(err, createAppointment.ErrEmailInvalid):
		return msgEmailInvalid, true
	case errors.Is(err, createAppointment.ErrServicesRequired):
		return msgServicesRequired, true
	case errors.Is(err, createAppointment.ErrServiceNotFound):
		return msgServiceNotFound, true
	case errors.Is(err, createAppointment.ErrLocationRequired):
		return msgLocationRequired, true
	case errors.Is(err, createAppointment.ErrLocationInvalid):
		return msgLocationInvalid, true
	case errors.Is(err, createAppointment.ErrDateRequired):
		return msgDateRequired, true
	case errors.Is(err, createAppointment.ErrDateInPast):
		return msgDateInPast, true
	case errors.Is(err, createAppointment.ErrTimeRequired):
		return msgTimeRequired, true
	case errors.Is(err, createAppointment.ErrTimeInvalid):
		return msgTimeInvalid, true
	}
	return "", false
}
