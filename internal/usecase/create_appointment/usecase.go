package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	settingsRepo    SettingsRepository
	mailClient      MailClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	settingsRepo SettingsRepository,
	mailClient MailClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		settingsRepo:    settingsRepo,
		mailClient:      mailClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Вставка бронирования и связей с услугами атомарна; защита от гонки за слот
// не реализуется на этом уровне
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: email=%s, services=%d, date=%s, time=%s",
		req.Email, len(req.ServiceIDs), req.BookingDate.Format(domain.DateFormat), req.BookingTime)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация входных данных (первая ошибка прерывает проверку)
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем, что все выбранные услуги существуют и активны
	services, err := uc.serviceRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}
	if len(services) != len(req.ServiceIDs) {
		uc.logger.Warn("CreateAppointment: %d of %d services not found",
			len(req.ServiceIDs)-len(services), len(req.ServiceIDs))
		return nil, ErrServiceNotFound
	}

	// 4. Собираем бронирование
	appt := &domain.Appointment{
		CustomerName:    req.CustomerName,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		ServiceIDs:      req.ServiceIDs,
		MeetingLocation: domain.MeetingLocation(req.MeetingLocation),
		BookingDate:     req.BookingDate,
		BookingTime:     req.BookingTime,
		Status:          domain.StatusPending,
	}

	switch appt.MeetingLocation {
	case domain.LocationCustomer:
		// Адрес клиента копируется в запись
		appt.Location = req.Location
		appt.StreetName = req.StreetName
		appt.BuildingName = req.BuildingName
		appt.ApartmentNumber = req.ApartmentNumber
	case domain.LocationOur:
		// Адрес компании денормализуется из настроек
		appt.CompanyLocation = uc.resolveCompanyLocation(ctx)
	}

	// 5. Сохраняем бронирование и связи с услугами атомарно
	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, reference=%s",
		result.ID, result.Reference)

	// 6. Письмо с подтверждением отправляется best-effort: сбой логируется
	// и не влияет на результат
	uc.sendConfirmation(ctx, result, services)

	return &Response{
		ID:          result.ID,
		Reference:   result.Reference,
		Status:      string(result.Status),
		BookingDate: result.BookingDate,
		BookingTime: result.BookingTime,
		CreatedAt:   result.CreatedAt,
	}, nil
}

// resolveCompanyLocation возвращает адрес компании из глобальных настроек
// Отсутствие настроек не является ошибкой
func (uc *UseCase) resolveCompanyLocation(ctx context.Context) *string {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("CreateAppointment: failed to get settings for company location: %v", err)
		}
		return nil
	}
	return settings.CompanyLocation
}

// sendConfirmation отправляет клиенту письмо с подтверждением записи
func (uc *UseCase) sendConfirmation(ctx context.Context, appt *domain.Appointment, services []*domain.Service) {
	names := make([]string, 0, len(services))
	for _, svc := range services {
		names = append(names, svc.Name)
	}

	body := fmt.Sprintf(
		"Dear %s,\n\nYour appointment %s has been received and is pending confirmation.\n\nDate: %s\nTime: %s\nServices: %s\n\nWe will contact you shortly.",
		appt.CustomerName,
		appt.Reference,
		appt.BookingDate.Format("January 2, 2006"),
		appt.BookingTime,
		strings.Join(names, ", "),
	)

	msg := &mailservice.Message{
		Recipients: []string{appt.Email},
		Subject:    fmt.Sprintf("Appointment Confirmation %s", appt.Reference),
		Body:       body,
	}

	if err := uc.mailClient.SendBestEffort(ctx, msg); err != nil {
		uc.logger.Warn("CreateAppointment: confirmation email for %s not sent: %v", appt.Reference, err)
	}
}
