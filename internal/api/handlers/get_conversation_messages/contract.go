package get_conversation_messages

import (
	"context"

	"github.com/ndemina/Salon-AdminService/internal/service/conversations/models"
)

type ConversationsService interface {
	GetMessages(ctx context.Context, conversationID string) (*models.MessageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
