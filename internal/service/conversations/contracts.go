package conversations

import (
	"context"
	"time"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	"github.com/ndemina/Salon-AdminService/internal/integrations/pushchannel"
)

// MessageStore интерфейс хранилища сообщений диалогов
type MessageStore interface {
	ListMessages(ctx context.Context, conversationID string) ([]domain.Message, error)
	AppendMessage(ctx context.Context, msg domain.Message) (*domain.Message, error)
}

// Pusher интерфейс push-канала для доставки исходящих сообщений клиенту
type Pusher interface {
	SendMessage(ctx context.Context, msg pushchannel.OutboundMessage) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
