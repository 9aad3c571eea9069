package domain

import "time"

// Service represents a bookable service from the catalog
type Service struct {
	ID              int64
	Name            string
	Description     *string
	Color           *string // Цвет для отображения в календаре
	DurationMinutes int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MinActiveDuration возвращает минимальную длительность среди активных услуг
// Используется как шаг сетки слотов; 0 если список пуст
func MinActiveDuration(services []*Service) int {
	min := 0
	for _, s := range services {
		if !s.IsActive || s.DurationMinutes <= 0 {
			continue
		}
		if min == 0 || s.DurationMinutes < min {
			min = s.DurationMinutes
		}
	}
	return min
}
