package clients

import (
	"context"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

// ClientStore интерфейс хранилища карточек клиентов
type ClientStore interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	CreateClient(ctx context.Context, update domain.ClientUpdate) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, update domain.ClientUpdate) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
