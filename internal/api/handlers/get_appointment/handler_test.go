package get_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type mockAppointmentRepo struct {
	byReference map[string]*domain.Appointment
}

func (m *mockAppointmentRepo) GetByReference(_ context.Context, reference string) (*domain.Appointment, error) {
	appt, ok := m.byReference[reference]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments/{reference}", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_ReturnsAppointmentByReference(t *testing.T) {
	repo := &mockAppointmentRepo{byReference: map[string]*domain.Appointment{
		"APT-2026-00042": {
			ID:              42,
			Reference:       "APT-2026-00042",
			CustomerName:    "Omar Hassan",
			MeetingLocation: domain.LocationOur,
			ServiceIDs:      []int64{1, 3},
			BookingDate:     time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC),
			BookingTime:     types.TimeString("11:00"),
			Status:          domain.StatusPending,
			CreatedAt:       time.Date(2026, time.September, 7, 8, 0, 0, 0, time.UTC),
		},
	}}
	h := NewHandler(repo, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/APT-2026-00042", nil)
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "APT-2026-00042", resp.Reference)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "2026-09-09", resp.BookingDate)
	assert.Equal(t, "11:00", resp.BookingTime)
	assert.Equal(t, string(domain.LocationOur), resp.MeetingLocation)
	assert.Equal(t, []int64{1, 3}, resp.ServiceIDs)
}

func TestHandle_UnknownReferenceReturnsNotFound(t *testing.T) {
	h := NewHandler(&mockAppointmentRepo{byReference: map[string]*domain.Appointment{}}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/APT-2026-99999", nil)
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgNotFound)
}
