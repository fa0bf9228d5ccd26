package pushchannel

// OutboundMessage исходящее сообщение клиенту салона
type OutboundMessage struct {
	ConversationID string `json:"conversation_id"`
	Body           string `json:"body"`
	Sender         string `json:"sender"`
}

// Notification служебное уведомление о событии записи
type Notification struct {
	ConversationID string `json:"conversation_id"`
	Event          string `json:"event"`
	Text           string `json:"text"`
}

// deliveryResponse ответ канала на отправку
type deliveryResponse struct {
	Delivered bool   `json:"delivered"`
	MessageID string `json:"message_id"`
}
