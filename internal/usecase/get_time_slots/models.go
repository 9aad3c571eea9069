package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	// HorizonDays переопределяет горизонт из настроек (опционально, 0 = из настроек)
	HorizonDays int
}

// Response модель ответа со списком доступных слотов
type Response struct {
	GeneratedAt time.Time // Момент генерации (слоты не кэшируются)
	Slots       []domain.AvailableSlot
}
