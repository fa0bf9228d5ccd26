package get_booking_options

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

	"github.com/ndemina/Salon-AdminService/internal/domain"
	getBookingOptions "github.com/ndemina/Salon-AdminService/internal/usecase/get_booking_options"
	"github.com/ndemina/Salon-AdminService/pkg/types"
)

type fakeUseCase struct {
	resp *getBookingOptions.Response
	err  error
	got  *getBookingOptions.Request
}

func (u *fakeUseCase) Execute(_ context.Context, req *getBookingOptions.Request) (*getBookingOptions.Response, error) {
	u.got = req
	return u.resp, u.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/services/{serviceName}/booking-options", h.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &getBookingOptions.Response{
		Service: domain.Service{
			ID:              "svc1",
			Name:            "Swedish Massage",
			DurationMinutes: 60,
			Price:           120,
		},
		Date:            time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
		Weekday:         time.Tuesday,
		HasAvailability: true,
		Staff: []getBookingOptions.StaffSlots{{
			Staff: domain.StaffMember{ID: "staff1", FullName: "Anna Petrova"},
			Slots: []domain.TimeSlot{{
				StartTime:       types.TimeString("09:00"),
				EndTime:         types.TimeString("10:00"),
				DurationMinutes: 60,
				Available:       true,
			}},
		}},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, "/api/v1/services/Swedish%20Massage/booking-options?date=2025-07-15")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "Swedish Massage", uc.got.ServiceName)

	var resp BookingOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2025-07-15", resp.Date)
	assert.Equal(t, "tuesday", resp.Weekday)
	assert.True(t, resp.HasAvailability)
	assert.Nil(t, resp.Alternatives)
	require.Len(t, resp.Staff, 1)
	require.Len(t, resp.Staff[0].Slots, 1)
	assert.Equal(t, "09:00", resp.Staff[0].Slots[0].StartTime)
	assert.Equal(t, "10:00", resp.Staff[0].Slots[0].EndTime)
}

func TestHandler_Alternatives(t *testing.T) {
	uc := &fakeUseCase{resp: &getBookingOptions.Response{
		Service:         domain.Service{ID: "svc1", Name: "Facial", DurationMinutes: 45},
		Date:            time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
		Weekday:         time.Tuesday,
		HasAvailability: false,
		Staff:           []getBookingOptions.StaffSlots{},
		Alternatives: &getBookingOptions.Alternatives{
			Previous: []getBookingOptions.DayAvailability{{
				Date:    time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC),
				Weekday: time.Monday,
				Staff:   []domain.StaffMember{{ID: "staff1", FullName: "Anna Petrova"}},
			}},
			Next: []getBookingOptions.DayAvailability{{
				Date:    time.Date(2025, time.July, 16, 0, 0, 0, 0, time.UTC),
				Weekday: time.Wednesday,
				Staff:   []domain.StaffMember{},
			}},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, "/api/v1/services/Facial/booking-options?date=2025-07-15")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BookingOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.False(t, resp.HasAvailability)
	require.NotNil(t, resp.Alternatives)
	require.Len(t, resp.Alternatives.Previous, 1)
	assert.Equal(t, "2025-07-14", resp.Alternatives.Previous[0].Date)
	assert.Equal(t, "monday", resp.Alternatives.Previous[0].Weekday)
	require.Len(t, resp.Alternatives.Previous[0].Staff, 1)
	require.Len(t, resp.Alternatives.Next, 1)
	assert.Empty(t, resp.Alternatives.Next[0].Staff)
}

func TestHandler_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, h, "/api/v1/services/Facial/booking-options?date=15.07.2025")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, "/api/v1/services/Facial/booking-options")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"service not found", getBookingOptions.ErrServiceNotFound, http.StatusNotFound},
		{"invalid duration", getBookingOptions.ErrInvalidDuration, http.StatusUnprocessableEntity},
		{"invalid input", getBookingOptions.ErrInvalidInput, http.StatusBadRequest},
		{"internal", getBookingOptions.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := doRequest(t, h, "/api/v1/services/Facial/booking-options?date=2025-07-15")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
