package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// GetServices возвращает список активных услуг для публичной формы записи
func (s *Service) GetServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.GetActive(ctx)
	if err != nil {
		s.logger.Error("GetServices: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	resp := &models.ServiceListResponse{
		Services: make([]models.ServiceResponse, 0, len(services)),
	}
	for _, svc := range services {
		resp.Services = append(resp.Services, models.ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Description:     svc.Description,
			Color:           svc.Color,
			DurationMinutes: svc.DurationMinutes,
		})
	}

	s.logger.Info("GetServices: returned %d services", len(resp.Services))

	return resp, nil
}
