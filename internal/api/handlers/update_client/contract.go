package update_client

import (
	"context"

	"github.com/ndemina/Salon-AdminService/internal/service/clients/models"
)

type ClientsService interface {
	Update(ctx context.Context, id string, req *models.UpdateClientRequest) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
