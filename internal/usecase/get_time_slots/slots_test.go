package get_time_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func rng(t *testing.T, from, to string) domain.TimeRange {
	t.Helper()
	return domain.TimeRange{From: ts(t, from), To: ts(t, to)}
}

// Понедельник 2026-09-07, 08:00 локального времени
func mondayMorning() time.Time {
	return time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC)
}

func TestGenerateSlots_GridStep(t *testing.T) {
	schedule := domain.WeekSchedule{
		"Monday": {rng(t, "09:00", "10:00")},
	}

	tests := []struct {
		name     string
		duration int
		want     []string
	}{
		{
			name:     "30 minute slots fill the hour",
			duration: 30,
			want:     []string{"09:00", "09:30"},
		},
		{
			name:     "40 minute slot leaves no room for a second",
			duration: 40,
			want:     []string{"09:00"},
		},
		{
			name:     "60 minute slot ends exactly at the boundary",
			duration: 60,
			want:     []string{"09:00"},
		},
		{
			name:     "slot longer than the range yields nothing",
			duration: 90,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(schedule, tt.duration, 1, nil, mondayMorning(), 0)

			starts := make([]string, 0, len(slots))
			for _, s := range slots {
				starts = append(starts, s.FromTime.String())
			}
			assert.Equal(t, tt.want, starts)
		})
	}
}

func TestGenerateSlots_ClosedDaysAreSkipped(t *testing.T) {
	schedule := domain.WeekSchedule{
		"Monday":    {rng(t, "09:00", "10:00")},
		"Wednesday": {rng(t, "09:00", "10:00")},
	}

	// Горизонт 3 дня: Monday, Tuesday, Wednesday
	slots := GenerateSlots(schedule, 30, 3, nil, mondayMorning(), 0)

	require.Len(t, slots, 4)
	for _, s := range slots {
		assert.NotEqual(t, "Tuesday", s.Day)
	}
	assert.Equal(t, "Monday", slots[0].Day)
	assert.Equal(t, "Wednesday", slots[2].Day)
}

func TestGenerateSlots_BookedKeyRemovesExactlyOneCandidate(t *testing.T) {
	schedule := domain.WeekSchedule{
		"Monday": {rng(t, "09:00", "11:00")},
	}

	now := mondayMorning()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	booked := map[domain.BookedSlotKey]struct{}{
		domain.NewBookedSlotKey(date, ts(t, "09:00")): {},
	}

	slots := GenerateSlots(schedule, 60, 1, booked, now, 0)

	require.Len(t, slots, 1)
	assert.Equal(t, "10:00", slots[0].FromTime.String())
}

func TestGenerateSlots_BookedKeyOnAnotherDateDoesNotBlock(t *testing.T) {
	schedule := domain.WeekSchedule{
		"Monday":  {rng(t, "09:00", "10:00")},
		"Tuesday": {rng(t, "09:00", "10:00")},
	}

	now := mondayMorning()
	tuesday := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	booked := map[domain.BookedSlotKey]struct{}{
		domain.NewBookedSlotKey(tuesday, ts(t, "09:00")): {},
	}

	slots := GenerateSlots(schedule, 60, 2, booked, now, 0)

	require.Len(t, slots, 1)
	assert.Equal(t, "Monday", slots[0].Day)
}

func TestGenerateSlots_NoticeCutoff(t *testing.T) {
	schedule := domain.WeekSchedule{
		"Monday": {rng(t, "09:00", "12:00")},
	}

	// Сейчас 10:00 понедельника
	now := time.Date(2026, time.September, 7, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		notice int
		want   []string
	}{
		{
			name:   "past slots and the slot starting exactly now are excluded",
			notice: 0,
			want:   []string{"11:00"},
		},
		{
			name:   "positive notice pushes the cutoff forward",
			notice: 90,
			want:   []string{},
		},
		{
			name:   "negative notice allows the current minute",
			notice: -5,
			want:   []string{"10:00", "11:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(schedule, 60, 1, nil, now, tt.notice)

			starts := make([]string, 0, len(slots))
			for _, s := range slots {
				starts = append(starts, s.FromTime.String())
			}
			assert.Equal(t, tt.want, starts)
		})
	}
}

func TestGenerateSlots_CutoffAppliesOnlyToToday(t *testing.T) {
	schedule := domain.WeekSchedule{
		"Monday":  {rng(t, "09:00", "10:00")},
		"Tuesday": {rng(t, "09:00", "10:00")},
	}

	// Конец рабочего дня понедельника: сегодня слотов уже нет
	now := time.Date(2026, time.September, 7, 18, 0, 0, 0, time.UTC)

	slots := GenerateSlots(schedule, 60, 2, nil, now, 0)

	require.Len(t, slots, 1)
	assert.Equal(t, "Tuesday", slots[0].Day)
}

func TestGenerateSlots_MultipleRangesPerDay(t *testing.T) {
	schedule := domain.WeekSchedule{
		"Monday": {
			rng(t, "14:00", "15:00"),
			rng(t, "09:00", "10:00"),
		},
	}

	slots := GenerateSlots(schedule, 60, 1, nil, mondayMorning(), 0)

	// Порядок хронологический независимо от порядка интервалов
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].FromTime.String())
	assert.Equal(t, "14:00", slots[1].FromTime.String())
}

func TestGenerateSlots_InvalidRangeIsSkipped(t *testing.T) {
	schedule := domain.WeekSchedule{
		"Monday": {
			rng(t, "15:00", "14:00"),
			rng(t, "09:00", "10:00"),
		},
	}

	slots := GenerateSlots(schedule, 60, 1, nil, mondayMorning(), 0)

	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].FromTime.String())
}

func TestGenerateSlots_ChronologicalOrderAcrossHorizon(t *testing.T) {
	schedule := domain.WeekSchedule{
		"Monday":    {rng(t, "09:00", "12:00")},
		"Tuesday":   {rng(t, "09:00", "12:00")},
		"Wednesday": {rng(t, "09:00", "12:00")},
	}

	slots := GenerateSlots(schedule, 30, 7, nil, mondayMorning(), 0)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		if prev.Date.Equal(cur.Date) {
			assert.True(t, prev.FromTime.IsBefore(cur.FromTime),
				"slots on %s out of order: %s before %s", cur.Date, prev.FromTime, cur.FromTime)
		} else {
			assert.True(t, prev.Date.Before(cur.Date))
		}
	}
}

func TestGenerateSlots_SlotEndTime(t *testing.T) {
	schedule := domain.WeekSchedule{
		"Monday": {rng(t, "09:00", "10:30")},
	}

	slots := GenerateSlots(schedule, 45, 1, nil, mondayMorning(), 0)

	require.Len(t, slots, 2)
	assert.Equal(t, "09:45", slots[0].ToTime.String())
	assert.Equal(t, "10:30", slots[1].ToTime.String())
}

func TestGenerateSlots_DegenerateInputs(t *testing.T) {
	schedule := domain.WeekSchedule{
		"Monday": {rng(t, "09:00", "10:00")},
	}

	assert.Empty(t, GenerateSlots(schedule, 0, 7, nil, mondayMorning(), 0))
	assert.Empty(t, GenerateSlots(schedule, 30, 0, nil, mondayMorning(), 0))
	assert.Empty(t, GenerateSlots(nil, 30, 7, nil, mondayMorning(), 0))
}
