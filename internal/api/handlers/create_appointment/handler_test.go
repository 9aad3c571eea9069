package create_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

type mockUseCase struct {
	executed []*createAppointment.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	m.executed = append(m.executed, req)
	return &createAppointment.Response{Reference: "APT-2026-00001", Status: "Pending"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_MalformedBookingTimeAnsweredWithTimeMessage(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"bookingDate":"2026-09-09","bookingTime":"25:99"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgTimeInvalid)
	assert.NotContains(t, rec.Body.String(), msgInvalidDateFormat)
	assert.Empty(t, uc.executed)
}

func TestHandle_MalformedBookingDateAnsweredWithDateMessage(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, `{"bookingDate":"09.09.2026","bookingTime":"11:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidDateFormat)
	assert.Empty(t, uc.executed)
}
