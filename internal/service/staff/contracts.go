package staff

import (
	"context"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

// StaffStore интерфейс хранилища записей сотрудников
type StaffStore interface {
	CreateStaff(ctx context.Context, update domain.StaffUpdate) (*domain.StaffMember, error)
	UpdateStaff(ctx context.Context, id string, update domain.StaffUpdate) (*domain.StaffMember, error)
	DeleteStaff(ctx context.Context, id string) error
}

// CacheInvalidator интерфейс сброса кэша каталога после изменения справочника
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
