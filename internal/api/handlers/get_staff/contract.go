package get_staff

import (
	"context"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

type StaffDirectory interface {
	ListStaff(ctx context.Context) ([]domain.StaffMember, error)
	GetQualifiedStaff(ctx context.Context, serviceName string) ([]domain.StaffMember, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
