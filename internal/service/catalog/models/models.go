package models

// ServiceResponse ответ с данными услуги каталога
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Color           *string `json:"color,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
}

// ServiceListResponse ответ со списком активных услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}
