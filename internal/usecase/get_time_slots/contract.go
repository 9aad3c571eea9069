package get_time_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// SettingsRepository интерфейс репозитория глобальных настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BookingSettings, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetActive(ctx context.Context) ([]*domain.Service, error)
}

// AvailabilityRepository интерфейс репозитория недельной доступности
type AvailabilityRepository interface {
	GetByUser(ctx context.Context, userID int64) ([]*domain.DayAvailability, error)
}

// AppointmentRepository интерфейс репозитория бронирований
// Оба вида бронирований блокируют один и тот же календарь
type AppointmentRepository interface {
	GetBookedSlots(ctx context.Context, from, to time.Time) ([]domain.BookedSlotKey, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
