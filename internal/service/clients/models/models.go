package models

import (
	"github.com/ndemina/Salon-AdminService/internal/domain"
)

// Request модели

// CreateClientRequest запрос на создание карточки клиента
type CreateClientRequest struct {
	Name             string   `json:"name"`
	Email            *string  `json:"email,omitempty"`
	Phone            *string  `json:"phone,omitempty"`
	PreferredService *string  `json:"preferredService,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

// ToDomainUpdate конвертирует request в domain частичное обновление
func (r *CreateClientRequest) ToDomainUpdate() domain.ClientUpdate {
	update := domain.ClientUpdate{
		Name:             &r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		PreferredService: r.PreferredService,
		Notes:            r.Notes,
	}
	if r.Tags != nil {
		update.Tags = &r.Tags
	}
	return update
}

// UpdateClientRequest запрос на частичное обновление карточки клиента
// nil-поля не изменяются
type UpdateClientRequest struct {
	Name             *string   `json:"name,omitempty"`
	Email            *string   `json:"email,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	LastVisit        *string   `json:"lastVisit,omitempty"`
	NextAppointment  *string   `json:"nextAppointment,omitempty"`
	PreferredService *string   `json:"preferredService,omitempty"`
	Tags             *[]string `json:"tags,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
}

// ToDomainUpdate конвертирует request в domain частичное обновление
func (r *UpdateClientRequest) ToDomainUpdate() domain.ClientUpdate {
	return domain.ClientUpdate{
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		LastVisit:        r.LastVisit,
		NextAppointment:  r.NextAppointment,
		PreferredService: r.PreferredService,
		Tags:             r.Tags,
		Notes:            r.Notes,
	}
}

// IsEmpty возвращает true, если запрос не изменяет ни одного поля
func (r *UpdateClientRequest) IsEmpty() bool {
	return r.Name == nil &&
		r.Email == nil &&
		r.Phone == nil &&
		r.LastVisit == nil &&
		r.NextAppointment == nil &&
		r.PreferredService == nil &&
		r.Tags == nil &&
		r.Notes == nil
}

// Response модели

// ClientResponse ответ с данными карточки клиента
type ClientResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	LastVisit        string   `json:"lastVisit,omitempty"`
	NextAppointment  string   `json:"nextAppointment,omitempty"`
	PreferredService string   `json:"preferredService,omitempty"`
	TotalVisits      int      `json:"totalVisits"`
	TotalSpent       float64  `json:"totalSpent"`
	Tags             []string `json:"tags,omitempty"`
	Notes            string   `json:"notes,omitempty"`
	CreatedAt        string   `json:"createdAt,omitempty"`
}

// ClientListResponse ответ со списком карточек клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// Методы конвертации

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	return &ClientResponse{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		LastVisit:        c.LastVisit,
		NextAppointment:  c.NextAppointment,
		PreferredService: c.PreferredService,
		TotalVisits:      c.TotalVisits,
		TotalSpent:       c.TotalSpent,
		Tags:             c.Tags,
		Notes:            c.Notes,
		CreatedAt:        c.CreatedAt,
	}
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(clients)),
	}

	for i := range clients {
		if clientResp := FromDomainClient(&clients[i]); clientResp != nil {
			resp.Clients = append(resp.Clients, *clientResp)
		}
	}

	return resp
}
