package create_video_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

// UseCase use case для создания видео-бронирования
type UseCase struct {
	videoRepo        VideoAppointmentRepository
	settingsRepo     SettingsRepository
	mailClient       MailClient
	txManager        TransactionManager
	managerRecipient string
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	videoRepo VideoAppointmentRepository,
	settingsRepo SettingsRepository,
	mailClient MailClient,
	txManager TransactionManager,
	managerRecipient string,
	logger Logger,
) *UseCase {
	return &UseCase{
		videoRepo:        videoRepo,
		settingsRepo:     settingsRepo,
		mailClient:       mailClient,
		txManager:        txManager,
		managerRecipient: managerRecipient,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания видео-бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateVideoAppointment: email=%s, company=%s, type=%s, date=%s, time=%s",
		req.Email, req.Company, req.AppointmentType,
		req.BookingDate.Format(domain.DateFormat), req.BookingTime)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Нормализуем исторические алиасы названия компании
	req.Company = domain.NormalizeCompany(req.Company)

	// 3. Валидация входных данных (первая ошибка прерывает проверку)
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateVideoAppointment: validation failed: %v", err)
		return nil, err
	}

	apptType := domain.AppointmentType(req.AppointmentType)

	// 4. Мягкая проверка действующего клиента: неизвестный email
	// логируется, но не блокирует запись
	if apptType == domain.TypeActiveClient {
		known, err := uc.videoRepo.HasAppointmentsWithEmail(ctx, req.Email)
		if err != nil {
			uc.logger.Warn("CreateVideoAppointment: client verification for %s failed: %v", req.Email, err)
		} else if !known {
			uc.logger.Warn("CreateVideoAppointment: email %s claims active client but has no prior appointments", req.Email)
		}
	}

	// 5. Собираем бронирование
	appt := uc.buildAppointment(ctx, req, apptType)

	// 6. Сохраняем атомарно
	var result *domain.VideoAppointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.videoRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateVideoAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateVideoAppointment: successfully created appointment id=%d, reference=%s",
		result.ID, result.Reference)

	// 7. Уведомление менеджеру отправляется best-effort
	uc.notifyManager(ctx, result)

	return &Response{
		ID:          result.ID,
		Reference:   result.Reference,
		Status:      string(result.Status),
		BookingDate: result.BookingDate,
		BookingTime: result.BookingTime,
		CreatedAt:   result.CreatedAt,
	}, nil
}

// buildAppointment переносит поля запроса в доменную модель
// Поля невыбранного варианта не сохраняются
func (uc *UseCase) buildAppointment(ctx context.Context, req *Request, apptType domain.AppointmentType) *domain.VideoAppointment {
	appt := &domain.VideoAppointment{
		Company:         req.Company,
		CustomerName:    req.CustomerName,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		AppointmentType: apptType,
		MeetingLocation: domain.MeetingLocation(req.MeetingLocation),
		BookingDate:     req.BookingDate,
		BookingTime:     req.BookingTime,
		Status:          domain.StatusPending,
	}

	switch apptType {
	case domain.TypeNewCustomer:
		appt.Industry = req.Industry
		appt.Service = req.Service
		appt.Requirements = req.Requirements
		appt.Budget = req.Budget
		appt.Notes = req.Notes
		appt.References = req.References
	case domain.TypeActiveClient:
		appt.BrandName = req.BrandName
		appt.Acknowledgment = req.Acknowledgment
		appt.ClientReferences = req.ClientReferences
	}

	switch appt.MeetingLocation {
	case domain.LocationCustomer:
		appt.GoogleLocation = req.GoogleLocation
		appt.City = req.City
		appt.ZoneNumber = req.ZoneNumber
		appt.StreetNumber = req.StreetNumber
		appt.BuildingNumber = req.BuildingNumber
	case domain.LocationOur:
		appt.CompanyLocation = uc.resolveCompanyLocation(ctx)
	}

	return appt
}

// resolveCompanyLocation возвращает адрес компании из глобальных настроек
// Отсутствие настроек не является ошибкой
func (uc *UseCase) resolveCompanyLocation(ctx context.Context) *string {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("CreateVideoAppointment: failed to get settings for company location: %v", err)
		}
		return nil
	}
	return settings.CompanyLocation
}

// notifyManager отправляет менеджеру уведомление о новой заявке
func (uc *UseCase) notifyManager(ctx context.Context, appt *domain.VideoAppointment) {
	if uc.managerRecipient == "" {
		return
	}

	body := fmt.Sprintf(
		"New video production appointment %s.\n\nCompany: %s\nType: %s\nCustomer: %s\nPhone: %s\nEmail: %s\nDate: %s\nTime: %s",
		appt.Reference,
		appt.Company,
		appt.AppointmentType,
		appt.CustomerName,
		appt.PhoneNumber,
		appt.Email,
		appt.BookingDate.Format("January 2, 2006"),
		appt.BookingTime,
	)

	if appt.AppointmentType == domain.TypeActiveClient {
		body += fmt.Sprintf("\nBrand: %s", ptr.Deref(appt.BrandName))
	}

	msg := &mailservice.Message{
		Recipients: []string{uc.managerRecipient},
		Subject:    fmt.Sprintf("New Video Production Appointment %s", appt.Reference),
		Body:       body,
	}

	if err := uc.mailClient.SendBestEffort(ctx, msg); err != nil {
		uc.logger.Warn("CreateVideoAppointment: manager notification for %s not sent: %v", appt.Reference, err)
	}
}
