package get_appointments

import (
	"context"

	"github.com/ndemina/Salon-AdminService/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetAppointments(ctx context.Context, req *models.GetAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
