package get_booking_options

import (
	"context"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	GetServiceByName(ctx context.Context, name string) (*domain.Service, error)
}

// StaffDirectory интерфейс справочника сотрудников
type StaffDirectory interface {
	// GetQualifiedStaff возвращает сотрудников, выполняющих указанную услугу
	// Пустой список - нормальный результат, а не ошибка
	GetQualifiedStaff(ctx context.Context, serviceName string) ([]domain.StaffMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
