package availability

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория недельной доступности
type AvailabilityRepository interface {
	GetByUser(ctx context.Context, userID int64) ([]*domain.DayAvailability, error)
	Upsert(ctx context.Context, day *domain.DayAvailability) (*domain.DayAvailability, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
