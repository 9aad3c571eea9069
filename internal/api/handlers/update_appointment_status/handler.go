package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
)

const (
	msgInvalidAppointmentID = "некорректный идентификатор записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStatus        = "неизвестный статус записи"
	msgNotFound             = "запись не найдена"

	msgUpdated = "статус записи обновлен"
)

type Handler struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

func NewHandler(appointmentRepo AppointmentRepository, logger Logger) *Handler {
	return &Handler{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}/status
// Подтверждение и отмена записей выполняются менеджером вручную
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("PUT /appointments/{id}/status - Invalid appointment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status := domain.AppointmentStatus(req.Status)
	if !domain.IsValidStatus(status) {
		h.logger.Warn("PUT /appointments/{id}/status - Invalid status: appointment_id=%d, status=%q",
			appointmentID, req.Status)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	if err := h.appointmentRepo.UpdateStatus(r.Context(), appointmentID, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			h.logger.Warn("PUT /appointments/{id}/status - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("PUT /appointments/{id}/status - Failed to update status: appointment_id=%d, error=%v",
			appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /appointments/{id}/status - Status updated: appointment_id=%d, status=%s",
		appointmentID, status)
	handlers.RespondJSON(w, http.StatusOK, UpdateStatusResponse{
		Success: true,
		Message: msgUpdated,
	})
}
