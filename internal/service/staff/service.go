package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndemina/Salon-AdminService/internal/integrations/tablestore"
	"github.com/ndemina/Salon-AdminService/internal/service/staff/models"
)

// Service сервис управления штатным справочником
// Записи живут во внешнем табличном хранилище; изменение дней доступности
// напрямую влияет на расчёт слотов, поэтому после каждой мутации
// сбрасывается кэш каталога
type Service struct {
	store  StaffStore
	cache  CacheInvalidator
	logger Logger
}

// NewService создает новый экземпляр сервиса сотрудников
// cache может быть nil, если кэширование каталога выключено
func NewService(store StaffStore, cache CacheInvalidator, logger Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Create создает запись сотрудника
func (s *Service) Create(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error) {
	if req.FullName == "" {
		s.logger.Warn("Create: empty staff full name")
		return nil, fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("Create: creating staff member name=%s", req.FullName)

	member, err := s.store.CreateStaff(ctx, update)
	if err != nil {
		s.logger.Error("Create: store error: %v", err)
		return nil, fmt.Errorf("%w: Create - store error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx)

	s.logger.Info("Create: successfully created staff member id=%s", member.ID)
	return models.FromDomainStaffMember(member), nil
}

// Update частично обновляет запись сотрудника
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateStaffRequest) (*models.StaffResponse, error) {
	if req.IsEmpty() {
		s.logger.Warn("Update: empty update for staff id=%s", id)
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}

	update, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("Update: updating staff member id=%s", id)

	member, err := s.store.UpdateStaff(ctx, id, update)
	if err != nil {
		if errors.Is(err, tablestore.ErrRecordNotFound) {
			s.logger.Warn("Update: staff member id=%s not found", id)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Update: store error for staff id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - store error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx)

	s.logger.Info("Update: successfully updated staff member id=%s", id)
	return models.FromDomainStaffMember(member), nil
}

// Delete удаляет запись сотрудника
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting staff member id=%s", id)

	if err := s.store.DeleteStaff(ctx, id); err != nil {
		if errors.Is(err, tablestore.ErrRecordNotFound) {
			s.logger.Warn("Delete: staff member id=%s not found", id)
			return ErrStaffNotFound
		}
		s.logger.Error("Delete: store error for staff id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx)

	s.logger.Info("Delete: successfully deleted staff member id=%s", id)
	return nil
}

// invalidateCache сбрасывает кэш каталога; ошибка сброса не откатывает
// мутацию, устаревшие записи истекут по TTL
func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("invalidateCache: failed to invalidate catalog cache: %v", err)
	}
}
