package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service сервис недельной доступности пользователей
type Service struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Get возвращает недельную доступность пользователя
// Ненастроенные дни материализуются как нерабочие без интервалов
func (s *Service) Get(ctx context.Context, userID int64) (*models.AvailabilityResponse, error) {
	days, err := s.availabilityRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Get: failed to get availability for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	configured := make(map[string]*domain.DayAvailability, len(days))
	for _, day := range days {
		configured[day.DayOfWeek] = day
	}

	resp := &models.AvailabilityResponse{
		UserID: userID,
		Days:   make([]models.DayAvailabilityModel, 0, len(domain.Weekdays)),
	}

	for _, weekday := range domain.Weekdays {
		day, ok := configured[weekday]
		if !ok {
			resp.Days = append(resp.Days, models.DayAvailabilityModel{
				DayOfWeek:   weekday,
				IsAvailable: false,
				TimeRanges:  []models.TimeRangeModel{},
			})
			continue
		}

		ranges := make([]models.TimeRangeModel, 0, len(day.Ranges))
		for _, rng := range day.Ranges {
			ranges = append(ranges, models.TimeRangeModel{
				FromTime: rng.From.String(),
				ToTime:   rng.To.String(),
			})
		}

		resp.Days = append(resp.Days, models.DayAvailabilityModel{
			DayOfWeek:   weekday,
			IsAvailable: day.IsAvailable,
			TimeRanges:  ranges,
		})
	}

	return resp, nil
}

// Save сохраняет недельную доступность пользователя
// Интервалы переданных дней заменяются целиком; дни сохраняются атомарно
func (s *Service) Save(ctx context.Context, req *models.SaveAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Save: saving availability for user=%d, days=%d", req.UserID, len(req.Days))

	// 1. Валидация переданных дней
	days := make([]*domain.DayAvailability, 0, len(req.Days))
	for _, dayModel := range req.Days {
		day, err := s.toDomainDay(req.UserID, dayModel)
		if err != nil {
			s.logger.Warn("Save: validation failed for user=%d, day=%s: %v", req.UserID, dayModel.DayOfWeek, err)
			return nil, err
		}
		days = append(days, day)
	}

	// 2. Сохраняем все дни в одной транзакции
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for _, day := range days {
			if _, err := s.availabilityRepo.Upsert(txCtx, day); err != nil {
				s.logger.Error("Save: failed to upsert day=%s for user=%d: %v", day.DayOfWeek, req.UserID, err)
				return fmt.Errorf("%w: failed to upsert day: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Save: availability saved for user=%d", req.UserID)

	// 3. Возвращаем актуальное состояние всех семи дней
	return s.Get(ctx, req.UserID)
}

// toDomainDay валидирует и конвертирует день из API-модели в доменную
func (s *Service) toDomainDay(userID int64, model models.DayAvailabilityModel) (*domain.DayAvailability, error) {
	if !domain.IsValidWeekday(model.DayOfWeek) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, model.DayOfWeek)
	}

	if !model.IsAvailable && len(model.TimeRanges) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrRangesOnUnavailableDay, model.DayOfWeek)
	}

	ranges := make([]domain.TimeRange, 0, len(model.TimeRanges))
	for _, rngModel := range model.TimeRanges {
		from, err := types.NewTimeStringFromString(rngModel.FromTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTimeRange, model.DayOfWeek, err)
		}
		to, err := types.NewTimeStringFromString(rngModel.ToTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTimeRange, model.DayOfWeek, err)
		}

		rng := domain.TimeRange{From: from, To: to}
		if !rng.IsValid() {
			return nil, fmt.Errorf("%w: %s: %s >= %s", ErrInvalidTimeRange, model.DayOfWeek, from, to)
		}
		ranges = append(ranges, rng)
	}

	return &domain.DayAvailability{
		UserID:      userID,
		DayOfWeek:   model.DayOfWeek,
		IsAvailable: model.IsAvailable,
		Ranges:      ranges,
	}, nil
}
