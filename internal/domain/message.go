package domain

import "time"

// MessageDirection направление сообщения в диалоге с клиентом
type MessageDirection string

const (
	DirectionInbound  MessageDirection = "inbound"
	DirectionOutbound MessageDirection = "outbound"
)

// Message сообщение в диалоге с клиентом
// Хранится во внешнем табличном хранилище, доставляется через push-канал
type Message struct {
	ID             string
	ConversationID string
	Direction      MessageDirection
	Sender         string
	Body           string
	SentAt         time.Time
}
