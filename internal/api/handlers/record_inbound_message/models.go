package record_inbound_message

// InboundMessageRequest входящее сообщение клиента, доставленное push-каналом
type InboundMessageRequest struct {
	ConversationID string `json:"conversationId"`
	Sender         string `json:"sender"`
	Body           string `json:"body"`
}
