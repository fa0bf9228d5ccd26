package record_inbound_message

import (
	"context"

	"github.com/ndemina/Salon-AdminService/internal/service/conversations/models"
)

type ConversationsService interface {
	RecordInbound(ctx context.Context, conversationID, sender, body string) (*models.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
