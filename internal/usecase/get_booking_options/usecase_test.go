package get_booking_options

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	"github.com/ndemina/Salon-AdminService/internal/integrations/tablestore"
)

type fakeCatalog struct {
	services map[string]domain.Service
}

func (c *fakeCatalog) GetServiceByName(_ context.Context, name string) (*domain.Service, error) {
	service, ok := c.services[name]
	if !ok {
		return nil, tablestore.ErrServiceNotFound
	}
	return &service, nil
}

type fakeStaffDirectory struct {
	staff []domain.StaffMember
}

func (d *fakeStaffDirectory) GetQualifiedStaff(_ context.Context, _ string) ([]domain.StaffMember, error) {
	return d.staff, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(services map[string]domain.Service, staff []domain.StaffMember, window int) *UseCase {
	return NewUseCase(&fakeCatalog{services: services}, &fakeStaffDirectory{staff: staff}, window, nopLogger{})
}

func TestUseCase_Execute_WithAvailability(t *testing.T) {
	services := map[string]domain.Service{
		"Swedish Massage": {ID: "svc1", Name: "Swedish Massage", DurationMinutes: 60, Price: 120},
	}
	staff := []domain.StaffMember{
		staffForWeekdays("tue", time.Tuesday),
		staffForWeekdays("mon", time.Monday),
	}

	uc := newTestUseCase(services, staff, 1)

	// 2025-07-15 - вторник
	resp, err := uc.Execute(context.Background(), &Request{
		ServiceName: "Swedish Massage",
		Date:        time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, resp.HasAvailability)
	assert.Nil(t, resp.Alternatives)
	assert.Equal(t, time.Tuesday, resp.Weekday)

	// Доступен только вторничный мастер, у него полная сетка 60-минутных слотов:
	// старты 09:00..16:00, последний заканчивается ровно в закрытие
	require.Len(t, resp.Staff, 1)
	assert.Equal(t, "tue", resp.Staff[0].Staff.ID)
	require.Len(t, resp.Staff[0].Slots, 15)
	assert.Equal(t, "16:00", resp.Staff[0].Slots[14].StartTime.String())
	assert.Equal(t, "17:00", resp.Staff[0].Slots[14].EndTime.String())
}

func TestUseCase_Execute_NoAvailabilityReturnsAlternatives(t *testing.T) {
	services := map[string]domain.Service{
		"Facial": {ID: "svc2", Name: "Facial", DurationMinutes: 45, Price: 80},
	}
	staff := []domain.StaffMember{staffForWeekdays("mon", time.Monday)}

	uc := newTestUseCase(services, staff, 1)

	// 2025-07-15 - вторник, мастер работает только по понедельникам
	resp, err := uc.Execute(context.Background(), &Request{
		ServiceName: "Facial",
		Date:        time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.False(t, resp.HasAvailability)
	assert.Empty(t, resp.Staff)
	require.NotNil(t, resp.Alternatives)

	require.Len(t, resp.Alternatives.Previous, 1)
	assert.Equal(t, "2025-07-14", resp.Alternatives.Previous[0].Date.Format(domain.DateFormat))
	require.Len(t, resp.Alternatives.Previous[0].Staff, 1)
	assert.Empty(t, resp.Alternatives.Next[0].Staff)
}

func TestUseCase_Execute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(map[string]domain.Service{}, nil, 1)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceName: "Unknown",
		Date:        time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUseCase_Execute_InvalidDuration(t *testing.T) {
	services := map[string]domain.Service{
		"Broken": {ID: "svc3", Name: "Broken", DurationMinutes: 0},
	}
	uc := newTestUseCase(services, nil, 1)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceName: "Broken",
		Date:        time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrInvalidDuration)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(map[string]domain.Service{}, nil, 1)

	_, err := uc.Execute(context.Background(), &Request{ServiceName: "", Date: time.Now()})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceName: "Facial"})
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_EmptyQualifiedStaff(t *testing.T) {
	services := map[string]domain.Service{
		"Facial": {ID: "svc2", Name: "Facial", DurationMinutes: 45},
	}
	uc := newTestUseCase(services, nil, 1)

	// Пустой справочник - не ошибка: вырождается в "нет доступности"
	// с тривиально пустыми альтернативами
	resp, err := uc.Execute(context.Background(), &Request{
		ServiceName: "Facial",
		Date:        time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.False(t, resp.HasAvailability)
	require.NotNil(t, resp.Alternatives)
	assert.Empty(t, resp.Alternatives.Previous[0].Staff)
	assert.Empty(t, resp.Alternatives.Next[0].Staff)
	assert.False(t, resp.Alternatives.HasAnyStaff())
}
