package get_location

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
)

// LocationResponse HTTP модель адреса компании
type LocationResponse struct {
	CompanyLocation *string `json:"companyLocation"`
}

type Handler struct {
	settingsRepo SettingsRepository
	logger       Logger
}

func NewHandler(settingsRepo SettingsRepository, logger Logger) *Handler {
	return &Handler{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Handle GET /api/v1/location
// Отсутствие настроек трактуется как пустой адрес, не как ошибка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsRepo.Get(r.Context())
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			handlers.RespondJSON(w, http.StatusOK, LocationResponse{})
			return
		}
		h.logger.Error("GET /location - Failed to get settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, LocationResponse{CompanyLocation: settings.CompanyLocation})
}
