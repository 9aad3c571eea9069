package create_video_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailservice"
)

// VideoAppointmentRepository интерфейс репозитория видео-бронирований
type VideoAppointmentRepository interface {
	Create(ctx context.Context, appt *domain.VideoAppointment) (*domain.VideoAppointment, error)
	HasAppointmentsWithEmail(ctx context.Context, email string) (bool, error)
}

// SettingsRepository интерфейс репозитория глобальных настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.BookingSettings, error)
}

// MailClient интерфейс клиента почтового сервиса
type MailClient interface {
	SendBestEffort(ctx context.Context, msg *mailservice.Message) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
