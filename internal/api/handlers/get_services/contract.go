package get_services

import (
	"context"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

type ServiceCatalog interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
