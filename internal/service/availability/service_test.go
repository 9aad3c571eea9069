package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
)

type mockAvailabilityRepo struct {
	days map[string]*domain.DayAvailability
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{days: make(map[string]*domain.DayAvailability)}
}

func (m *mockAvailabilityRepo) GetByUser(_ context.Context, userID int64) ([]*domain.DayAvailability, error) {
	out := make([]*domain.DayAvailability, 0, len(m.days))
	for _, day := range m.days {
		if day.UserID == userID {
			out = append(out, day)
		}
	}
	return out, nil
}

func (m *mockAvailabilityRepo) Upsert(_ context.Context, day *domain.DayAvailability) (*domain.DayAvailability, error) {
	m.days[day.DayOfWeek] = day
	return day, nil
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func newService(repo *mockAvailabilityRepo) *Service {
	return NewService(repo, &mockTxManager{}, &nopLogger{})
}

func TestGet_MaterializesAllSevenDays(t *testing.T) {
	repo := newMockAvailabilityRepo()
	svc := newService(repo)

	resp, err := svc.Get(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, domain.Weekdays, daysOf(resp))
	for _, day := range resp.Days {
		assert.False(t, day.IsAvailable)
		assert.Empty(t, day.TimeRanges)
	}
}

func TestSave_UpsertsAndReturnsFullWeek(t *testing.T) {
	repo := newMockAvailabilityRepo()
	svc := newService(repo)

	resp, err := svc.Save(context.Background(), &models.SaveAvailabilityRequest{
		UserID: 7,
		Days: []models.DayAvailabilityModel{
			{
				DayOfWeek:   "Monday",
				IsAvailable: true,
				TimeRanges: []models.TimeRangeModel{
					{FromTime: "09:00", ToTime: "13:00"},
					{FromTime: "14:00", ToTime: "18:00"},
				},
			},
			{DayOfWeek: "Sunday", IsAvailable: false},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	monday := resp.Days[0]
	assert.Equal(t, "Monday", monday.DayOfWeek)
	assert.True(t, monday.IsAvailable)
	require.Len(t, monday.TimeRanges, 2)
	assert.Equal(t, "09:00", monday.TimeRanges[0].FromTime)
	assert.Equal(t, "18:00", monday.TimeRanges[1].ToTime)

	// Непереданные дни материализованы как нерабочие
	tuesday := resp.Days[1]
	assert.Equal(t, "Tuesday", tuesday.DayOfWeek)
	assert.False(t, tuesday.IsAvailable)
}

func TestSave_Validation(t *testing.T) {
	tests := []struct {
		name    string
		day     models.DayAvailabilityModel
		wantErr error
	}{
		{
			name:    "unknown weekday",
			day:     models.DayAvailabilityModel{DayOfWeek: "Funday", IsAvailable: true},
			wantErr: ErrInvalidWeekday,
		},
		{
			name: "from after to",
			day: models.DayAvailabilityModel{
				DayOfWeek:   "Monday",
				IsAvailable: true,
				TimeRanges:  []models.TimeRangeModel{{FromTime: "15:00", ToTime: "09:00"}},
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "malformed time",
			day: models.DayAvailabilityModel{
				DayOfWeek:   "Monday",
				IsAvailable: true,
				TimeRanges:  []models.TimeRangeModel{{FromTime: "nine", ToTime: "10:00"}},
			},
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "ranges on unavailable day",
			day: models.DayAvailabilityModel{
				DayOfWeek:   "Monday",
				IsAvailable: false,
				TimeRanges:  []models.TimeRangeModel{{FromTime: "09:00", ToTime: "10:00"}},
			},
			wantErr: ErrRangesOnUnavailableDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockAvailabilityRepo()
			svc := newService(repo)

			_, err := svc.Save(context.Background(), &models.SaveAvailabilityRequest{
				UserID: 7,
				Days:   []models.DayAvailabilityModel{tt.day},
			})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.days)
		})
	}
}

func daysOf(resp *models.AvailabilityResponse) []string {
	out := make([]string, 0, len(resp.Days))
	for _, day := range resp.Days {
		out = append(out, day.DayOfWeek)
	}
	return out
}
