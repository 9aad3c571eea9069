package get_location

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BookingSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
