package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type mockAppointmentRepo struct {
	created []*domain.Appointment
}

func (m *mockAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	stored := *appt
	stored.ID = int64(len(m.created) + 1)
	stored.Reference = "APT-2026-00001"
	stored.CreatedAt = time.Now()
	m.created = append(m.created, &stored)
	return &stored, nil
}

type mockServiceRepo struct {
	services []*domain.Service
}

func (m *mockServiceRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Service, error) {
	found := make([]*domain.Service, 0, len(ids))
	for _, id := range ids {
		for _, svc := range m.services {
			if svc.ID == id {
				found = append(found, svc)
			}
		}
	}
	return found, nil
}

type mockSettingsRepo struct {
	settings *domain.BookingSettings
}

func (m *mockSettingsRepo) Get(_ context.Context) (*domain.BookingSettings, error) {
	if m.settings == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return m.settings, nil
}

type mockMailClient struct {
	sent []*mailservice.Message
}

func (m *mockMailClient) SendBestEffort(_ context.Context, msg *mailservice.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fixture struct {
	uc       *UseCase
	apptRepo *mockAppointmentRepo
	mail     *mockMailClient
}

func newFixture(settings *domain.BookingSettings) *fixture {
	apptRepo := &mockAppointmentRepo{}
	mail := &mockMailClient{}

	uc := NewUseCase(
		apptRepo,
		&mockServiceRepo{services: []*domain.Service{
			{ID: 1, Name: "Consultation", DurationMinutes: 30, IsActive: true},
			{ID: 2, Name: "Installation", DurationMinutes: 60, IsActive: true},
		}},
		&mockSettingsRepo{settings: settings},
		mail,
		&mockTxManager{},
		&nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC)}

	return &fixture{uc: uc, apptRepo: apptRepo, mail: mail}
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	bt, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)
	return &Request{
		CustomerName:    "Jane Smith",
		PhoneNumber:     "+97450123456",
		Email:           "jane@example.com",
		ServiceIDs:      []int64{1, 2},
		MeetingLocation: string(domain.LocationOur),
		BookingDate:     time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC),
		BookingTime:     bt,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(&domain.BookingSettings{CompanyLocation: ptr.Ptr("Doha, West Bay Tower 12")})

	resp, err := f.uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	assert.Equal(t, "APT-2026-00001", resp.Reference)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	require.Len(t, f.apptRepo.created, 1)
	created := f.apptRepo.created[0]
	assert.Equal(t, domain.StatusPending, created.Status)
	require.NotNil(t, created.CompanyLocation)
	assert.Equal(t, "Doha, West Bay Tower 12", *created.CompanyLocation)

	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, []string{"jane@example.com"}, f.mail.sent[0].Recipients)
	assert.Contains(t, f.mail.sent[0].Body, "APT-2026-00001")
}

func TestExecute_CustomerLocationCopiesAddress(t *testing.T) {
	f := newFixture(nil)

	req := validRequest(t)
	req.MeetingLocation = string(domain.LocationCustomer)
	req.Location = ptr.Ptr("Al Sadd")
	req.StreetName = ptr.Ptr("Street 340")
	req.BuildingName = ptr.Ptr("Building 7")
	req.ApartmentNumber = ptr.Ptr("42")

	_, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, f.apptRepo.created, 1)
	created := f.apptRepo.created[0]
	assert.Equal(t, "Al Sadd", *created.Location)
	assert.Equal(t, "Street 340", *created.StreetName)
	assert.Equal(t, "Building 7", *created.BuildingName)
	assert.Equal(t, "42", *created.ApartmentNumber)
	assert.Nil(t, created.CompanyLocation)
}

func TestExecute_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "missing customer name",
			mutate:  func(r *Request) { r.CustomerName = "  " },
			wantErr: ErrCustomerNameRequired,
		},
		{
			name:    "missing phone",
			mutate:  func(r *Request) { r.PhoneNumber = "" },
			wantErr: ErrPhoneRequired,
		},
		{
			name:    "missing email",
			mutate:  func(r *Request) { r.Email = "" },
			wantErr: ErrEmailRequired,
		},
		{
			name:    "malformed email",
			mutate:  func(r *Request) { r.Email = "not-an-email" },
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "no services selected",
			mutate:  func(r *Request) { r.ServiceIDs = nil },
			wantErr: ErrServicesRequired,
		},
		{
			name:    "missing meeting location",
			mutate:  func(r *Request) { r.MeetingLocation = "" },
			wantErr: ErrLocationRequired,
		},
		{
			name:    "unknown meeting location",
			mutate:  func(r *Request) { r.MeetingLocation = "Moon Base" },
			wantErr: ErrLocationInvalid,
		},
		{
			name:    "missing booking date",
			mutate:  func(r *Request) { r.BookingDate = time.Time{} },
			wantErr: ErrDateRequired,
		},
		{
			name: "booking date in the past",
			mutate: func(r *Request) {
				r.BookingDate = time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC)
			},
			wantErr: ErrDateInPast,
		},
		{
			name:    "missing booking time",
			mutate:  func(r *Request) { r.BookingTime = types.TimeString("") },
			wantErr: ErrTimeRequired,
		},
		{
			name: "first failing field wins",
			mutate: func(r *Request) {
				r.CustomerName = ""
				r.Email = ""
				r.ServiceIDs = nil
			},
			wantErr: ErrCustomerNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(nil)

			req := validRequest(t)
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, tt.wantErr)
			// Отклоненный запрос не оставляет записей и писем
			assert.Empty(t, f.apptRepo.created)
			assert.Empty(t, f.mail.sent)
		})
	}
}

func TestExecute_UnknownServiceRejected(t *testing.T) {
	f := newFixture(nil)

	req := validRequest(t)
	req.ServiceIDs = []int64{1, 99}

	_, err := f.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, f.apptRepo.created)
}

func TestExecute_MissingSettingsLeavesCompanyLocationEmpty(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.Execute(context.Background(), validRequest(t))

	require.NoError(t, err)
	require.Len(t, f.apptRepo.created, 1)
	assert.Nil(t, f.apptRepo.created[0].CompanyLocation)
}
