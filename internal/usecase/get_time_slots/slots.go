package get_time_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// GenerateSlots генерирует свободные слоты на горизонте horizonDays от текущего дня
//
// Алгоритм:
//  1. Для каждого дня горизонта берутся рабочие интервалы из расписания;
//     дни без интервалов пропускаются
//  2. Каждый интервал обходится курсором с шагом slotDurationMinutes;
//     кандидат допустим, пока его конец не выходит за границу интервала
//     (неполный последний слот отбрасывается)
//  3. Кандидаты, начинающиеся не позже now + noticeMinutes, отбрасываются
//     (noticeMinutes может быть отрицательным - допуск для текущей минуты)
//  4. Кандидаты с занятым ключом (дата, время начала) отбрасываются -
//     точное совпадение, удаляет ровно один кандидат
//  5. Результат сортируется по (дата, время начала) по возрастанию
//
// Дублирующиеся интервалы одного дня обходятся независимо и не дедуплицируются
func GenerateSlots(
	schedule domain.WeekSchedule,
	slotDurationMinutes int,
	horizonDays int,
	booked map[domain.BookedSlotKey]struct{},
	now time.Time,
	noticeMinutes int,
) []domain.AvailableSlot {
	slots := make([]domain.AvailableSlot, 0)

	if slotDurationMinutes <= 0 || horizonDays <= 0 {
		return slots
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	cutoff := now.Add(time.Duration(noticeMinutes) * time.Minute)

	for offset := 0; offset < horizonDays; offset++ {
		date := today.AddDate(0, 0, offset)
		dayName := date.Weekday().String()

		for _, rng := range schedule[dayName] {
			if !rng.IsValid() {
				continue
			}

			cursor := rng.From
			for {
				end, err := cursor.AddMinutes(slotDurationMinutes)
				if err != nil || end.IsAfter(rng.To) {
					break
				}

				startAt, err := cursor.At(date)
				if err != nil {
					break
				}

				if startAt.After(cutoff) {
					key := domain.NewBookedSlotKey(date, cursor)
					if _, taken := booked[key]; !taken {
						slots = append(slots, domain.AvailableSlot{
							Date:     date,
							Day:      dayName,
							FromTime: cursor,
							ToTime:   end,
						})
					}
				}

				cursor = end
			}
		}
	}

	// Хронологический порядок - требование корректности выдачи
	sort.SliceStable(slots, func(i, j int) bool {
		if !slots[i].Date.Equal(slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].FromTime.IsBefore(slots[j].FromTime)
	})

	return slots
}
