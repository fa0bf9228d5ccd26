package staff

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	"github.com/ndemina/Salon-AdminService/internal/integrations/tablestore"
	"github.com/ndemina/Salon-AdminService/internal/service/staff/models"
	"github.com/ndemina/Salon-AdminService/pkg/ptr"
)

type fakeStore struct {
	staff  map[string]domain.StaffMember
	nextID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{staff: make(map[string]domain.StaffMember)}
}

func (s *fakeStore) CreateStaff(_ context.Context, update domain.StaffUpdate) (*domain.StaffMember, error) {
	s.nextID++
	m := domain.StaffMember{
		ID:                fmt.Sprintf("rec%d", s.nextID),
		AvailableWeekdays: make(map[time.Weekday]bool),
	}
	applyUpdate(&m, update)
	s.staff[m.ID] = m
	return &m, nil
}

func (s *fakeStore) UpdateStaff(_ context.Context, id string, update domain.StaffUpdate) (*domain.StaffMember, error) {
	m, ok := s.staff[id]
	if !ok {
		return nil, tablestore.ErrRecordNotFound
	}
	applyUpdate(&m, update)
	s.staff[id] = m
	return &m, nil
}

func (s *fakeStore) DeleteStaff(_ context.Context, id string) error {
	if _, ok := s.staff[id]; !ok {
		return tablestore.ErrRecordNotFound
	}
	delete(s.staff, id)
	return nil
}

func applyUpdate(m *domain.StaffMember, update domain.StaffUpdate) {
	if update.FullName != nil {
		m.FullName = *update.FullName
	}
	if update.EmployeeNumber != nil {
		m.EmployeeNumber = *update.EmployeeNumber
	}
	if update.ContactNumber != nil {
		m.ContactNumber = *update.ContactNumber
	}
	if update.AvailableWeekdays != nil {
		m.AvailableWeekdays = make(map[time.Weekday]bool)
		for _, day := range *update.AvailableWeekdays {
			m.AvailableWeekdays[day] = true
		}
	}
	if update.QualifiedServices != nil {
		m.QualifiedServices = *update.QualifiedServices
	}
}

type fakeInvalidator struct {
	calls int
	err   error
}

func (f *fakeInvalidator) Invalidate(_ context.Context) error {
	f.calls++
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Create(t *testing.T) {
	store := newFakeStore()
	inv := &fakeInvalidator{}
	svc := NewService(store, inv, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateStaffRequest{
		FullName:          "Anna Petrova",
		ContactNumber:     ptr.Ptr("+7 900 000-00-00"),
		AvailableWeekdays: []string{"monday", "Tuesday"},
		QualifiedServices: []string{"Swedish Massage"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Anna Petrova", created.FullName)
	assert.Equal(t, []string{"monday", "tuesday"}, created.AvailableWeekdays)
	assert.Equal(t, []string{"Swedish Massage"}, created.QualifiedServices)

	// Изменение справочника сбрасывает кэш каталога
	assert.Equal(t, 1, inv.calls)

	stored := store.staff[created.ID]
	assert.True(t, stored.IsAvailableOn(time.Monday))
	assert.True(t, stored.IsAvailableOn(time.Tuesday))
	assert.False(t, stored.IsAvailableOn(time.Wednesday))
}

func TestService_Create_Invalid(t *testing.T) {
	svc := NewService(newFakeStore(), nil, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateStaffRequest{FullName: ""})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.CreateStaffRequest{
		FullName:          "Anna Petrova",
		AvailableWeekdays: []string{"Funday"},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_Partial(t *testing.T) {
	store := newFakeStore()
	inv := &fakeInvalidator{}
	svc := NewService(store, inv, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateStaffRequest{
		FullName:          "Anna Petrova",
		AvailableWeekdays: []string{"monday"},
	})
	require.NoError(t, err)

	// nil-поля не изменяются
	updated, err := svc.Update(context.Background(), created.ID, &models.UpdateStaffRequest{
		AvailableWeekdays: &[]string{"wednesday", "friday"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Anna Petrova", updated.FullName)
	assert.Equal(t, []string{"wednesday", "friday"}, updated.AvailableWeekdays)
	assert.Equal(t, 2, inv.calls)
}

func TestService_Update_Empty(t *testing.T) {
	svc := NewService(newFakeStore(), nil, nopLogger{})

	_, err := svc.Update(context.Background(), "rec1", &models.UpdateStaffRequest{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_NotFound(t *testing.T) {
	svc := NewService(newFakeStore(), nil, nopLogger{})

	_, err := svc.Update(context.Background(), "missing", &models.UpdateStaffRequest{FullName: ptr.Ptr("X")})
	require.ErrorIs(t, err, ErrStaffNotFound)

	err = svc.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, ErrStaffNotFound)
}

func TestService_Delete(t *testing.T) {
	store := newFakeStore()
	inv := &fakeInvalidator{}
	svc := NewService(store, inv, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateStaffRequest{FullName: "Anna"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, store.staff)
	assert.Equal(t, 2, inv.calls)
}

func TestService_CacheInvalidationFailureDoesNotFail(t *testing.T) {
	inv := &fakeInvalidator{err: fmt.Errorf("redis down")}
	svc := NewService(newFakeStore(), inv, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateStaffRequest{FullName: "Anna"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}
