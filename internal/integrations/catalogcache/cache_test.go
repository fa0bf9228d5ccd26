package catalogcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	"github.com/ndemina/Salon-AdminService/internal/integrations/tablestore"
)

type countingSource struct {
	services     map[string]domain.Service
	staff        []domain.StaffMember
	serviceCalls int
	staffCalls   int
	listSvcCalls int
	listStfCalls int
}

func (s *countingSource) ListServices(_ context.Context) ([]domain.Service, error) {
	s.listSvcCalls++
	services := make([]domain.Service, 0, len(s.services))
	for _, svc := range s.services {
		services = append(services, svc)
	}
	return services, nil
}

func (s *countingSource) GetServiceByName(_ context.Context, name string) (*domain.Service, error) {
	s.serviceCalls++
	svc, ok := s.services[name]
	if !ok {
		return nil, tablestore.ErrServiceNotFound
	}
	return &svc, nil
}

func (s *countingSource) ListStaff(_ context.Context) ([]domain.StaffMember, error) {
	s.listStfCalls++
	return s.staff, nil
}

func (s *countingSource) GetQualifiedStaff(_ context.Context, _ string) ([]domain.StaffMember, error) {
	s.staffCalls++
	return s.staff, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestCache(t *testing.T, source Source) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return New(source, rdb, time.Minute, nopLogger{}), mr
}

func TestCache_GetServiceByName_ReadThrough(t *testing.T) {
	source := &countingSource{services: map[string]domain.Service{
		"Facial": {ID: "svc1", Name: "Facial", DurationMinutes: 45, Price: 80},
	}}
	cache, _ := newTestCache(t, source)

	ctx := context.Background()

	first, err := cache.GetServiceByName(ctx, "Facial")
	require.NoError(t, err)
	assert.Equal(t, "svc1", first.ID)
	assert.Equal(t, 1, source.serviceCalls)

	// Второй запрос обслуживается из кэша
	second, err := cache.GetServiceByName(ctx, "Facial")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.serviceCalls)
}

func TestCache_GetServiceByName_CachesNotFound(t *testing.T) {
	source := &countingSource{services: map[string]domain.Service{}}
	cache, _ := newTestCache(t, source)

	ctx := context.Background()

	_, err := cache.GetServiceByName(ctx, "Unknown")
	require.ErrorIs(t, err, tablestore.ErrServiceNotFound)

	_, err = cache.GetServiceByName(ctx, "Unknown")
	require.ErrorIs(t, err, tablestore.ErrServiceNotFound)

	assert.Equal(t, 1, source.serviceCalls)
}

func TestCache_GetQualifiedStaff_ExpiresByTTL(t *testing.T) {
	source := &countingSource{staff: []domain.StaffMember{{
		ID:       "staff1",
		FullName: "Anna Petrova",
		AvailableWeekdays: map[time.Weekday]bool{
			time.Monday: true,
		},
	}}}
	cache, mr := newTestCache(t, source)

	ctx := context.Background()

	staff, err := cache.GetQualifiedStaff(ctx, "Facial")
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.True(t, staff[0].AvailableWeekdays[time.Monday])
	assert.Equal(t, 1, source.staffCalls)

	_, err = cache.GetQualifiedStaff(ctx, "Facial")
	require.NoError(t, err)
	assert.Equal(t, 1, source.staffCalls)

	// После истечения TTL запрос снова уходит в источник
	mr.FastForward(2 * time.Minute)

	_, err = cache.GetQualifiedStaff(ctx, "Facial")
	require.NoError(t, err)
	assert.Equal(t, 2, source.staffCalls)
}

func TestCache_FallsBackWhenRedisDown(t *testing.T) {
	source := &countingSource{services: map[string]domain.Service{
		"Facial": {ID: "svc1", Name: "Facial", DurationMinutes: 45},
	}}
	cache, mr := newTestCache(t, source)

	// Кэш недоступен: каждый запрос идёт в источник, без ошибок
	mr.Close()

	ctx := context.Background()

	for i := 0; i < 2; i++ {
		svc, err := cache.GetServiceByName(ctx, "Facial")
		require.NoError(t, err)
		assert.Equal(t, "svc1", svc.ID)
	}
	assert.Equal(t, 2, source.serviceCalls)
}

func TestCache_Invalidate(t *testing.T) {
	source := &countingSource{services: map[string]domain.Service{
		"Facial": {ID: "svc1", Name: "Facial", DurationMinutes: 45},
	}}
	cache, _ := newTestCache(t, source)

	ctx := context.Background()

	_, err := cache.ListServices(ctx)
	require.NoError(t, err)
	_, err = cache.GetServiceByName(ctx, "Facial")
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(ctx))

	_, err = cache.GetServiceByName(ctx, "Facial")
	require.NoError(t, err)
	assert.Equal(t, 2, source.serviceCalls)
}
