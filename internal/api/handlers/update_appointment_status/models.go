package update_appointment_status

// UpdateStatusRequest HTTP модель смены статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse HTTP модель результата смены статуса
type UpdateStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
