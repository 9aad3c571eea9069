package create_video_appointment

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

type mockVideoRepo struct {
	created     []*domain.VideoAppointment
	knownEmails map[string]bool
}

func (m *mockVideoRepo) Create(_ context.Context, appt *domain.VideoAppointment) (*domain.VideoAppointment, error) {
	stored := *appt
	stored.ID = int64(len(m.created) + 1)
	stored.Reference = "VPA-2026-00001"
	stored.CreatedAt = time.Now()
	m.created = append(m.created, &stored)
	return &stored, nil
}

func (m *mockVideoRepo) HasAppointmentsWithEmail(_ context.Context, email string) (bool, error) {
	return m.knownEmails[email], nil
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

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Info(string, ...interface{}) {}
func (l *recordingLogger) Warn(format string, _ ...interface{}) {
	l.warnings = append(l.warnings, format)
}
func (l *recordingLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type fixture struct {
	uc     *UseCase
	repo   *mockVideoRepo
	mail   *mockMailClient
	logger *recordingLogger
}

func newFixture() *fixture {
	repo := &mockVideoRepo{knownEmails: map[string]bool{"regular@example.com": true}}
	mail := &mockMailClient{}
	logger := &recordingLogger{}

	uc := NewUseCase(
		repo,
		&mockSettingsRepo{},
		mail,
		&mockTxManager{},
		"manager@directlinez.com",
		logger,
	)
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC)}

	return &fixture{uc: uc, repo: repo, mail: mail, logger: logger}
}

func newCustomerRequest(t *testing.T) *Request {
	t.Helper()
	bt, err := types.NewTimeStringFromString("11:00")
	require.NoError(t, err)
	return &Request{
		Company:         domain.CompanyDirectlines,
		CustomerName:    "Omar Hassan",
		PhoneNumber:     "+97455511222",
		Email:           "omar@example.com",
		MeetingLocation: string(domain.LocationOur),
		AppointmentType: string(domain.TypeNewCustomer),
		Industry:        ptr.Ptr("Hospitality"),
		Requirements:    ptr.Ptr("Promo video for a hotel opening"),
		Budget:          ptr.Ptr("5000-10000"),
		BookingDate:     time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC),
		BookingTime:     bt,
	}
}

func activeClientRequest(t *testing.T) *Request {
	t.Helper()
	req := newCustomerRequest(t)
	req.Email = "regular@example.com"
	req.AppointmentType = string(domain.TypeActiveClient)
	req.Industry = nil
	req.Requirements = nil
	req.Budget = nil
	req.BrandName = ptr.Ptr("Pearl Hotels")
	req.Acknowledgment = true
	return req
}

func TestExecute_NewCustomerSuccess(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), newCustomerRequest(t))

	require.NoError(t, err)
	assert.Equal(t, "VPA-2026-00001", resp.Reference)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	require.Len(t, f.repo.created, 1)
	created := f.repo.created[0]
	assert.Equal(t, domain.TypeNewCustomer, created.AppointmentType)
	assert.Equal(t, "Hospitality", *created.Industry)
	assert.Nil(t, created.BrandName)

	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, []string{"manager@directlinez.com"}, f.mail.sent[0].Recipients)
	assert.Contains(t, f.mail.sent[0].Body, "VPA-2026-00001")
}

func TestExecute_ActiveClientSuccess(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), activeClientRequest(t))

	require.NoError(t, err)
	require.Len(t, f.repo.created, 1)
	created := f.repo.created[0]
	assert.Equal(t, domain.TypeActiveClient, created.AppointmentType)
	assert.Equal(t, "Pearl Hotels", *created.BrandName)
	assert.True(t, created.Acknowledgment)
	assert.Nil(t, created.Industry)
	// Известный email не вызывает предупреждений о верификации
	assert.Empty(t, f.logger.warnings)
}

func TestExecute_ActiveClientUnknownEmailWarnsButCreates(t *testing.T) {
	f := newFixture()

	req := activeClientRequest(t)
	req.Email = "stranger@example.com"

	_, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, f.repo.created, 1)
	assert.NotEmpty(t, f.logger.warnings)
}

func TestExecute_CompanyAliasNormalized(t *testing.T) {
	f := newFixture()

	req := newCustomerRequest(t)
	req.Company = "Direct Line"

	_, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, f.repo.created, 1)
	assert.Equal(t, domain.CompanyDirectlines, f.repo.created[0].Company)
}

func TestExecute_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		request func(t *testing.T) *Request
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "unknown company",
			request: newCustomerRequest,
			mutate:  func(r *Request) { r.Company = "Acme Studios" },
			wantErr: ErrCompanyInvalid,
		},
		{
			name:    "missing customer name",
			request: newCustomerRequest,
			mutate:  func(r *Request) { r.CustomerName = "" },
			wantErr: ErrCustomerNameRequired,
		},
		{
			name:    "missing email",
			request: newCustomerRequest,
			mutate:  func(r *Request) { r.Email = "" },
			wantErr: ErrEmailRequired,
		},
		{
			name:    "malformed email",
			request: newCustomerRequest,
			mutate:  func(r *Request) { r.Email = "omar at example" },
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "missing meeting location",
			request: newCustomerRequest,
			mutate:  func(r *Request) { r.MeetingLocation = "" },
			wantErr: ErrLocationRequired,
		},
		{
			name:    "unknown meeting location",
			request: newCustomerRequest,
			mutate:  func(r *Request) { r.MeetingLocation = "Rooftop" },
			wantErr: ErrLocationInvalid,
		},
		{
			name:    "missing appointment type",
			request: newCustomerRequest,
			mutate:  func(r *Request) { r.AppointmentType = "" },
			wantErr: ErrTypeRequired,
		},
		{
			name:    "unknown appointment type",
			request: newCustomerRequest,
			mutate:  func(r *Request) { r.AppointmentType = "Walk In" },
			wantErr: ErrTypeInvalid,
		},
		{
			name:    "new customer without industry",
			request: newCustomerRequest,
			mutate:  func(r *Request) { r.Industry = nil },
			wantErr: ErrIndustryRequired,
		},
		{
			name:    "new customer without requirements",
			request: newCustomerRequest,
			mutate:  func(r *Request) { r.Requirements = ptr.Ptr("  ") },
			wantErr: ErrRequirementsRequired,
		},
		{
			name:    "new customer without budget",
			request: newCustomerRequest,
			mutate:  func(r *Request) { r.Budget = nil },
			wantErr: ErrBudgetRequired,
		},
		{
			name:    "active client without brand name",
			request: activeClientRequest,
			mutate:  func(r *Request) { r.BrandName = nil },
			wantErr: ErrBrandNameRequired,
		},
		{
			name:    "active client without acknowledgment",
			request: activeClientRequest,
			mutate:  func(r *Request) { r.Acknowledgment = false },
			wantErr: ErrAcknowledgmentRequired,
		},
		{
			name:    "missing booking date",
			request: newCustomerRequest,
			mutate:  func(r *Request) { r.BookingDate = time.Time{} },
			wantErr: ErrDateRequired,
		},
		{
			name:    "missing booking time",
			request: newCustomerRequest,
			mutate:  func(r *Request) { r.BookingTime = types.TimeString("") },
			wantErr: ErrTimeRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			req := tt.request(t)
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.repo.created)
			assert.Empty(t, f.mail.sent)
		})
	}
}
