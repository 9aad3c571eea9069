package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
)

const (
	msgNotFound = "запись не найдена"
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

// Handle GET /api/v1/appointments/{reference}
// Поиск записи по публичному номеру из письма-подтверждения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	appt, err := h.appointmentRepo.GetByReference(r.Context(), reference)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			h.logger.Warn("GET /appointments/{reference} - Appointment not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /appointments/{reference} - Failed to get appointment: reference=%s, error=%v",
			reference, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/{reference} - Appointment retrieved: reference=%s", reference)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(appt))
}
