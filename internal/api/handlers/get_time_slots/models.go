package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getTimeSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_time_slots"
)

// SlotResponse HTTP модель доступного слота
type SlotResponse struct {
	Date        string `json:"date"` // "2025-10-15"
	Day         string `json:"day"`  // "Wednesday"
	FromTime    string `json:"fromTime"`
	ToTime      string `json:"toTime"`
	DateDisplay string `json:"dateDisplay"` // "October 15, 2025"
	TimeDisplay string `json:"timeDisplay"` // "09:00 - 09:30"
}

// SlotsResponse HTTP модель списка доступных слотов
type SlotsResponse struct {
	GeneratedAt string         `json:"generatedAt"`
	Slots       []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		GeneratedAt: resp.GeneratedAt.Format(time.RFC3339),
		Slots:       make([]SlotResponse, 0, len(resp.Slots)),
	}

	for i := range resp.Slots {
		slot := &resp.Slots[i]
		out.Slots = append(out.Slots, SlotResponse{
			Date:        slot.Date.Format(domain.DateFormat),
			Day:         slot.Day,
			FromTime:    slot.FromTime.String(),
			ToTime:      slot.ToTime.String(),
			DateDisplay: slot.DateDisplay(),
			TimeDisplay: slot.TimeDisplay(),
		})
	}

	return out
}
