package clients

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	"github.com/ndemina/Salon-AdminService/internal/integrations/tablestore"
	"github.com/ndemina/Salon-AdminService/internal/service/clients/models"
	"github.com/ndemina/Salon-AdminService/pkg/ptr"
)

type fakeStore struct {
	clients map[string]domain.Client
	nextID  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{clients: make(map[string]domain.Client)}
}

func (s *fakeStore) ListClients(_ context.Context) ([]domain.Client, error) {
	list := make([]domain.Client, 0, len(s.clients))
	for _, c := range s.clients {
		list = append(list, c)
	}
	return list, nil
}

func (s *fakeStore) GetClient(_ context.Context, id string) (*domain.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, tablestore.ErrRecordNotFound
	}
	return &c, nil
}

func (s *fakeStore) CreateClient(_ context.Context, update domain.ClientUpdate) (*domain.Client, error) {
	s.nextID++
	c := domain.Client{ID: fmt.Sprintf("rec%d", s.nextID)}
	applyUpdate(&c, update)
	s.clients[c.ID] = c
	return &c, nil
}

func (s *fakeStore) UpdateClient(_ context.Context, id string, update domain.ClientUpdate) (*domain.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, tablestore.ErrRecordNotFound
	}
	applyUpdate(&c, update)
	s.clients[id] = c
	return &c, nil
}

func (s *fakeStore) DeleteClient(_ context.Context, id string) error {
	if _, ok := s.clients[id]; !ok {
		return tablestore.ErrRecordNotFound
	}
	delete(s.clients, id)
	return nil
}

func applyUpdate(c *domain.Client, update domain.ClientUpdate) {
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Email != nil {
		c.Email = *update.Email
	}
	if update.Phone != nil {
		c.Phone = *update.Phone
	}
	if update.PreferredService != nil {
		c.PreferredService = *update.PreferredService
	}
	if update.Tags != nil {
		c.Tags = *update.Tags
	}
	if update.Notes != nil {
		c.Notes = *update.Notes
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_CreateAndGet(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateClientRequest{
		Name:  "Maria Ivanova",
		Email: ptr.Ptr("maria@example.com"),
		Tags:  []string{"VIP"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	fetched, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Ivanova", fetched.Name)
	assert.Equal(t, "maria@example.com", fetched.Email)
	assert.Equal(t, []string{"VIP"}, fetched.Tags)
}

func TestService_Create_EmptyName(t *testing.T) {
	svc := NewService(newFakeStore(), nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateClientRequest{Name: ""})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_Partial(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateClientRequest{
		Name:  "Maria Ivanova",
		Phone: ptr.Ptr("+7 900 000-00-00"),
	})
	require.NoError(t, err)

	// nil-поля не изменяются
	updated, err := svc.Update(context.Background(), created.ID, &models.UpdateClientRequest{
		Email: ptr.Ptr("maria@example.com"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria Ivanova", updated.Name)
	assert.Equal(t, "+7 900 000-00-00", updated.Phone)
	assert.Equal(t, "maria@example.com", updated.Email)
}

func TestService_Update_Empty(t *testing.T) {
	svc := NewService(newFakeStore(), nopLogger{})

	_, err := svc.Update(context.Background(), "rec1", &models.UpdateClientRequest{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_NotFound(t *testing.T) {
	svc := NewService(newFakeStore(), nopLogger{})

	_, err := svc.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.Update(context.Background(), "missing", &models.UpdateClientRequest{Name: ptr.Ptr("X")})
	require.ErrorIs(t, err, ErrClientNotFound)

	err = svc.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_Delete(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateClientRequest{Name: "Maria"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrClientNotFound)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list.Clients)
}
