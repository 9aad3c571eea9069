package get_time_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
)

// UseCase use case для получения доступных слотов
// Слоты считаются заново на каждый запрос: без кэширования и блокировок
type UseCase struct {
	settingsRepo     SettingsRepository
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	appointmentRepo  AppointmentRepository
	videoRepo        AppointmentRepository
	calendarOwnerID  int64
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settingsRepo SettingsRepository,
	serviceRepo ServiceRepository,
	availabilityRepo AvailabilityRepository,
	appointmentRepo AppointmentRepository,
	videoRepo AppointmentRepository,
	calendarOwnerID int64,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo:     settingsRepo,
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		appointmentRepo:  appointmentRepo,
		videoRepo:        videoRepo,
		calendarOwnerID:  calendarOwnerID,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Отсутствие настроек или выключенное расписание - пустой результат, не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	emptyResponse := &Response{
		GeneratedAt: now,
		Slots:       []domain.AvailableSlot{},
	}

	// 1. Получаем глобальные настройки
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("GetTimeSlots: settings not found, returning empty result")
			return emptyResponse, nil
		}
		uc.logger.Error("GetTimeSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 2. Проверяем, что запись включена
	if !settings.EnableScheduling {
		uc.logger.Info("GetTimeSlots: scheduling is disabled")
		return emptyResponse, nil
	}

	// 3. Определяем шаг сетки: минимальная длительность активной услуги,
	// иначе значение из настроек
	services, err := uc.serviceRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	slotDuration := domain.MinActiveDuration(services)
	if slotDuration == 0 {
		slotDuration = settings.DefaultSlotDurationMinutes
	}
	if slotDuration == 0 {
		slotDuration = domain.DefaultSlotDurationMinutes
	}

	// 4. Горизонт генерации
	horizon := settings.AdvanceBookingDays
	if req != nil && req.HorizonDays > 0 && req.HorizonDays < horizon {
		horizon = req.HorizonDays
	}
	if horizon <= 0 {
		horizon = domain.DefaultAdvanceBookingDays
	}

	// 5. Строим недельное расписание
	schedule, err := uc.resolveSchedule(ctx, settings)
	if err != nil {
		return nil, err
	}
	if schedule.IsEmpty() {
		uc.logger.Info("GetTimeSlots: no working ranges configured")
		return emptyResponse, nil
	}

	// 6. Собираем занятые слоты за горизонт (оба вида бронирований
	// блокируют один календарь)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	booked, err := uc.collectBookedSlots(ctx, today, today.AddDate(0, 0, horizon-1))
	if err != nil {
		return nil, err
	}

	// 7. Генерируем слоты
	slots := GenerateSlots(schedule, slotDuration, horizon, booked, now, settings.MinBookingNoticeMinutes)

	uc.logger.Info("GetTimeSlots: generated %d slots (duration=%dm, horizon=%dd, booked=%d)",
		len(slots), slotDuration, horizon, len(booked))

	return &Response{
		GeneratedAt: now,
		Slots:       slots,
	}, nil
}

// resolveSchedule строит недельное расписание
// Приоритет: недельная доступность владельца календаря, затем глобальное окно
func (uc *UseCase) resolveSchedule(ctx context.Context, settings *domain.BookingSettings) (domain.WeekSchedule, error) {
	if uc.calendarOwnerID != 0 {
		days, err := uc.availabilityRepo.GetByUser(ctx, uc.calendarOwnerID)
		if err != nil {
			uc.logger.Error("GetTimeSlots: failed to get availability for user=%d: %v", uc.calendarOwnerID, err)
			return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		if len(days) > 0 {
			schedule := make(domain.WeekSchedule)
			for _, day := range days {
				if !day.IsAvailable {
					continue
				}
				schedule[day.DayOfWeek] = append(schedule[day.DayOfWeek], day.Ranges...)
			}
			if !schedule.IsEmpty() {
				return schedule, nil
			}
			// Настроенная, но полностью пустая доступность -
			// откатываемся к глобальному окну
		}
	}

	return settings.GlobalSchedule(), nil
}

// collectBookedSlots объединяет занятые слоты обоих видов бронирований
func (uc *UseCase) collectBookedSlots(ctx context.Context, from, to time.Time) (map[domain.BookedSlotKey]struct{}, error) {
	booked := make(map[domain.BookedSlotKey]struct{})

	general, err := uc.appointmentRepo.GetBookedSlots(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to get booked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}
	for _, key := range general {
		booked[key] = struct{}{}
	}

	video, err := uc.videoRepo.GetBookedSlots(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetTimeSlots: failed to get video booked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get video booked slots: %v", ErrInternal, err)
	}
	for _, key := range video {
		booked[key] = struct{}{}
	}

	return booked, nil
}
