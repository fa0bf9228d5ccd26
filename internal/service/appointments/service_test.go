package appointments

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	aptRepo "github.com/ndemina/Salon-AdminService/internal/infra/storage/appointment"
	"github.com/ndemina/Salon-AdminService/internal/service/appointments/models"
	"github.com/ndemina/Salon-AdminService/pkg/types"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
	cancelled    map[int64]string
}

func newFakeRepo(appointments ...*domain.Appointment) *fakeRepo {
	repo := &fakeRepo{
		appointments: make(map[int64]*domain.Appointment),
		cancelled:    make(map[int64]string),
	}
	for _, apt := range appointments {
		repo.appointments[apt.ID] = apt
	}
	return repo
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	apt, ok := r.appointments[id]
	if !ok {
		return nil, aptRepo.ErrAppointmentNotFound
	}
	return apt, nil
}

func (r *fakeRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0, len(r.appointments))
	for _, apt := range r.appointments {
		result = append(result, apt)
	}
	return result, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	apt, ok := r.appointments[id]
	if !ok {
		return aptRepo.ErrAppointmentNotFound
	}
	apt.Status = status
	return nil
}

func (r *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	apt, ok := r.appointments[id]
	if !ok {
		return aptRepo.ErrAppointmentNotFound
	}
	apt.Status = domain.StatusCancelled
	r.cancelled[id] = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

func scheduledAppointment(id int64) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		ClientID:        "client1",
		StaffID:         "staff1",
		ServiceName:     "Swedish Massage",
		Date:            time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
		Status:          domain.StatusScheduled,
	}
}

func TestService_Cancel(t *testing.T) {
	repo := newFakeRepo(scheduledAppointment(1))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		CancellationReason: "клиент заболел",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, repo.appointments[1].Status)
	assert.Equal(t, "клиент заболел", repo.cancelled[1])
}

func TestService_Cancel_ReasonTooLong(t *testing.T) {
	repo := newFakeRepo(scheduledAppointment(1))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		CancellationReason: strings.Repeat("a", domain.MaxCancellationReasonLen+1),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// Запись осталась нетронутой
	assert.Equal(t, domain.StatusScheduled, repo.appointments[1].Status)
}

func TestService_Cancel_OnlyScheduled(t *testing.T) {
	completed := scheduledAppointment(1)
	completed.Status = domain.StatusCompleted
	svc := NewService(newFakeRepo(completed), nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{})
	require.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{})
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := newFakeRepo(scheduledAppointment(1))
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.appointments[1].Status)
}

func TestService_UpdateStatus_Invalid(t *testing.T) {
	repo := newFakeRepo(scheduledAppointment(1))
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "archived"})
	require.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, domain.StatusScheduled, repo.appointments[1].Status)
}
