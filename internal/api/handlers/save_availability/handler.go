package save_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	availabilityService "github.com/m04kA/SMC-AppointmentService/internal/service/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidUserID       = "некорректный идентификатор пользователя"
	msgAccessDenied        = "доступ к чужим настройкам запрещен"
	msgInvalidWeekday      = "неизвестный день недели"
	msgInvalidTimeRange    = "некорректный интервал: начало должно быть раньше конца"
	msgRangesOnUnavailable = "для нерабочего дня нельзя задать интервалы"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/users/{userId}/availability
// Пользователь может изменять только собственные настройки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil || userID <= 0 {
		h.logger.Warn("PUT /users/{userId}/availability - Invalid user id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	authUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok || authUserID != userID {
		h.logger.Warn("PUT /users/{userId}/availability - Access denied: auth_user=%d, requested_user=%d",
			authUserID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req models.SaveAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{userId}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Save(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidWeekday):
			handlers.RespondBadRequest(w, msgInvalidWeekday)
		case errors.Is(err, availabilityService.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)
		case errors.Is(err, availabilityService.ErrRangesOnUnavailableDay):
			handlers.RespondBadRequest(w, msgRangesOnUnavailable)
		default:
			h.logger.Error("PUT /users/{userId}/availability - Failed to save availability: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{userId}/availability - Availability saved: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
