package create_appointment

import (
	"time"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	createAppointment "github.com/ndemina/Salon-AdminService/internal/usecase/create_appointment"
	"github.com/ndemina/Salon-AdminService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID       string  `json:"clientId"`
	ClientName     string  `json:"clientName"`
	ServiceName    string  `json:"serviceName"`
	StaffID        string  `json:"staffId"`
	Date           string  `json:"date"`      // "2025-10-15"
	StartTime      string  `json:"startTime"` // "10:00"
	Notes          *string `json:"notes,omitempty"`
	IdempotencyKey *string `json:"idempotencyKey,omitempty"`
	ConversationID *string `json:"conversationId,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ClientID        string  `json:"clientId"`
	ClientName      string  `json:"clientName"`
	StaffID         string  `json:"staffId"`
	StaffName       string  `json:"staffName"`
	ServiceID       string  `json:"serviceId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:       r.ClientID,
		ClientName:     r.ClientName,
		ServiceName:    r.ServiceName,
		StaffID:        r.StaffID,
		Date:           date,
		StartTime:      startTime,
		Notes:          r.Notes,
		IdempotencyKey: r.IdempotencyKey,
		ConversationID: r.ConversationID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ClientName:      resp.ClientName,
		StaffID:         resp.StaffID,
		StaffName:       resp.StaffName,
		ServiceID:       resp.ServiceID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
