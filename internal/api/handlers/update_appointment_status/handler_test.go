package update_appointment_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
)

type statusUpdate struct {
	ID     int64
	Status domain.AppointmentStatus
}

type mockAppointmentRepo struct {
	knownIDs map[int64]bool
	updates  []statusUpdate
}

func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if !m.knownIDs[id] {
		return appointmentRepo.ErrAppointmentNotFound
	}
	m.updates = append(m.updates, statusUpdate{ID: id, Status: status})
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments/{appointmentId}/status", h.Handle).Methods(http.MethodPut)
	return r
}

func doRequest(t *testing.T, h *Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	newRouter(h).ServeHTTP(rec, req)
	return rec
}

func TestHandle_UpdatesStatus(t *testing.T) {
	repo := &mockAppointmentRepo{knownIDs: map[int64]bool{42: true}}
	h := NewHandler(repo, nopLogger{})

	rec := doRequest(t, h, "/api/v1/appointments/42/status", `{"status":"Confirmed"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, int64(42), repo.updates[0].ID)
	assert.Equal(t, domain.StatusConfirmed, repo.updates[0].Status)
}

func TestHandle_UnknownStatusRejected(t *testing.T) {
	repo := &mockAppointmentRepo{knownIDs: map[int64]bool{42: true}}
	h := NewHandler(repo, nopLogger{})

	rec := doRequest(t, h, "/api/v1/appointments/42/status", `{"status":"Done"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidStatus)
	assert.Empty(t, repo.updates)
}

func TestHandle_UnknownAppointmentReturnsNotFound(t *testing.T) {
	repo := &mockAppointmentRepo{knownIDs: map[int64]bool{}}
	h := NewHandler(repo, nopLogger{})

	rec := doRequest(t, h, "/api/v1/appointments/42/status", `{"status":"Cancelled"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, repo.updates)
}

func TestHandle_InvalidIDRejected(t *testing.T) {
	repo := &mockAppointmentRepo{knownIDs: map[int64]bool{}}
	h := NewHandler(repo, nopLogger{})

	rec := doRequest(t, h, "/api/v1/appointments/0/status", `{"status":"Confirmed"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidAppointmentID)
}
