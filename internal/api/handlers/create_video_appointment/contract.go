package create_video_appointment

import (
	"context"

	createVideoAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_video_appointment"
)

type CreateVideoAppointmentUseCase interface {
	Execute(ctx context.Context, req *createVideoAppointment.Request) (*createVideoAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
