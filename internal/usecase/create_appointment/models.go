package create_appointment

import (
	"time"

	"github.com/ndemina/Salon-AdminService/pkg/types"
)

// Request входные данные для создания записи
type Request struct {
	ClientID       string
	ClientName     string
	ServiceName    string
	StaffID        string
	Date           time.Time
	StartTime      types.TimeString
	Notes          *string
	IdempotencyKey *string
	ConversationID *string
}

// Response результат создания записи
type Response struct {
	ID              int64            `json:"id"`
	ClientID        string           `json:"clientId"`
	ClientName      string           `json:"clientName"`
	StaffID         string           `json:"staffId"`
	StaffName       string           `json:"staffName"`
	ServiceID       string           `json:"serviceId"`
	Date            time.Time        `json:"date"`
	StartTime       types.TimeString `json:"startTime"`
	DurationMinutes int              `json:"durationMinutes"`
	Status          string           `json:"status"`
	ServiceName     string           `json:"serviceName"`
	ServicePrice    float64          `json:"servicePrice"`
	Notes           *string          `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
