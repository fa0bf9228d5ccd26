package catalogcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	"github.com/ndemina/Salon-AdminService/internal/integrations/tablestore"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Source источник данных каталога и справочника (клиент табличного хранилища)
type Source interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	GetServiceByName(ctx context.Context, name string) (*domain.Service, error)
	ListStaff(ctx context.Context) ([]domain.StaffMember, error)
	GetQualifiedStaff(ctx context.Context, serviceName string) ([]domain.StaffMember, error)
}

// Cache read-through кэш каталога услуг и справочника сотрудников поверх Redis
// Ошибки кэша не фатальны: при любой проблеме с Redis запрос уходит в источник.
// Отрицательный результат поиска услуги тоже кэшируется, чтобы не ходить
// в хранилище за каждой опечаткой в названии
type Cache struct {
	source Source
	rdb    *redis.Client
	ttl    time.Duration
	log    Logger
}

// sentinel-значение для кэширования отсутствия услуги
const notFoundMarker = "__not_found__"

// New создает новый кэш поверх источника
func New(source Source, rdb *redis.Client, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		source: source,
		rdb:    rdb,
		ttl:    ttl,
		log:    log,
	}
}

// ListServices возвращает все услуги каталога
func (c *Cache) ListServices(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	if c.getCached(ctx, keyServices, &services) {
		return services, nil
	}

	services, err := c.source.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	c.setCached(ctx, keyServices, services)
	return services, nil
}

// GetServiceByName ищет услугу по точному названию
func (c *Cache) GetServiceByName(ctx context.Context, name string) (*domain.Service, error) {
	key := keyServiceByName(name)

	raw, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		if raw == notFoundMarker {
			return nil, tablestore.ErrServiceNotFound
		}
		var service domain.Service
		if err := json.Unmarshal([]byte(raw), &service); err == nil {
			return &service, nil
		}
		c.log.Warn("catalogcache: corrupted entry for key %s, falling through", key)
	case !errors.Is(err, redis.Nil):
		c.log.Warn("catalogcache: redis get failed for key %s: %v", key, err)
	}

	service, err := c.source.GetServiceByName(ctx, name)
	if err != nil {
		if errors.Is(err, tablestore.ErrServiceNotFound) {
			if setErr := c.rdb.Set(ctx, key, notFoundMarker, c.ttl).Err(); setErr != nil {
				c.log.Warn("catalogcache: redis set failed for key %s: %v", key, setErr)
			}
		}
		return nil, err
	}

	c.setCached(ctx, key, service)
	return service, nil
}

// ListStaff возвращает всех сотрудников
func (c *Cache) ListStaff(ctx context.Context) ([]domain.StaffMember, error) {
	var staff []domain.StaffMember
	if c.getCached(ctx, keyStaff, &staff) {
		return staff, nil
	}

	staff, err := c.source.ListStaff(ctx)
	if err != nil {
		return nil, err
	}

	c.setCached(ctx, keyStaff, staff)
	return staff, nil
}

// GetQualifiedStaff возвращает сотрудников, выполняющих указанную услугу
func (c *Cache) GetQualifiedStaff(ctx context.Context, serviceName string) ([]domain.StaffMember, error) {
	key := keyQualifiedStaff(serviceName)

	var staff []domain.StaffMember
	if c.getCached(ctx, key, &staff) {
		return staff, nil
	}

	staff, err := c.source.GetQualifiedStaff(ctx, serviceName)
	if err != nil {
		return nil, err
	}

	c.setCached(ctx, key, staff)
	return staff, nil
}

// Invalidate сбрасывает все закэшированные записи каталога и справочника
func (c *Cache) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("catalogcache: failed to delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("catalogcache: scan failed: %w", err)
	}
	return nil
}

// getCached читает и декодирует значение из кэша, false при промахе или ошибке
func (c *Cache) getCached(ctx context.Context, key string, out interface{}) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("catalogcache: redis get failed for key %s: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn("catalogcache: corrupted entry for key %s: %v", key, err)
		return false
	}
	return true
}

// setCached кодирует и записывает значение в кэш, ошибки не фатальны
func (c *Cache) setCached(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("catalogcache: failed to encode value for key %s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("catalogcache: redis set failed for key %s: %v", key, err)
	}
}

const keyPrefix = "catalog:"

const (
	keyServices = keyPrefix + "services"
	keyStaff    = keyPrefix + "staff"
)

func keyServiceByName(name string) string {
	return keyPrefix + "service:" + name
}

func keyQualifiedStaff(serviceName string) string {
	return keyPrefix + "qualified:" + serviceName
}
