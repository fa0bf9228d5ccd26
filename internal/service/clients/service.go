package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndemina/Salon-AdminService/internal/integrations/tablestore"
	"github.com/ndemina/Salon-AdminService/internal/service/clients/models"
)

// Service сервис для работы с карточками клиентов
// Карточки живут во внешнем табличном хранилище, сервис транслирует
// операции CRM-панели в вызовы клиента хранилища
type Service struct {
	store  ClientStore
	logger Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(store ClientStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// List возвращает все карточки клиентов
func (s *Service) List(ctx context.Context) (*models.ClientListResponse, error) {
	s.logger.Info("List: fetching clients")

	clients, err := s.store.ListClients(ctx)
	if err != nil {
		s.logger.Error("List: store error: %v", err)
		return nil, fmt.Errorf("%w: List - store error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d clients", len(clients))
	return models.FromDomainClientList(clients), nil
}

// GetByID возвращает карточку клиента по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ClientResponse, error) {
	s.logger.Info("GetByID: fetching client id=%s", id)

	client, err := s.store.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, tablestore.ErrRecordNotFound) {
			s.logger.Warn("GetByID: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: store error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - store error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// Create создает карточку клиента
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	if req.Name == "" {
		s.logger.Warn("Create: empty client name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	s.logger.Info("Create: creating client name=%s", req.Name)

	client, err := s.store.CreateClient(ctx, req.ToDomainUpdate())
	if err != nil {
		s.logger.Error("Create: store error: %v", err)
		return nil, fmt.Errorf("%w: Create - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%s", client.ID)
	return models.FromDomainClient(client), nil
}

// Update частично обновляет карточку клиента
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateClientRequest) (*models.ClientResponse, error) {
	if req.IsEmpty() {
		s.logger.Warn("Update: empty update for client id=%s", id)
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}

	s.logger.Info("Update: updating client id=%s", id)

	client, err := s.store.UpdateClient(ctx, id, req.ToDomainUpdate())
	if err != nil {
		if errors.Is(err, tablestore.ErrRecordNotFound) {
			s.logger.Warn("Update: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: store error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated client id=%s", id)
	return models.FromDomainClient(client), nil
}

// Delete удаляет карточку клиента
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting client id=%s", id)

	if err := s.store.DeleteClient(ctx, id); err != nil {
		if errors.Is(err, tablestore.ErrRecordNotFound) {
			s.logger.Warn("Delete: client id=%s not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("Delete: store error for client id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted client id=%s", id)
	return nil
}
