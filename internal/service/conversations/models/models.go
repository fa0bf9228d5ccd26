package models

import (
	"time"

	"github.com/ndemina/Salon-AdminService/internal/domain"
)

// Request модели

// SendMessageRequest запрос на отправку сообщения в диалог
type SendMessageRequest struct {
	Sender string `json:"sender"`
	Body   string `json:"body"`
}

// Response модели

// MessageResponse ответ с данными сообщения
type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Direction      string    `json:"direction"`
	Sender         string    `json:"sender"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sentAt"`
}

// MessageListResponse ответ со списком сообщений диалога
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// Методы конвертации

// FromDomainMessage конвертирует domain модель в DTO
func FromDomainMessage(m *domain.Message) *MessageResponse {
	if m == nil {
		return nil
	}

	return &MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Direction:      string(m.Direction),
		Sender:         m.Sender,
		Body:           m.Body,
		SentAt:         m.SentAt,
	}
}

// FromDomainMessageList конвертирует список domain моделей в DTO
func FromDomainMessageList(messages []domain.Message) *MessageListResponse {
	resp := &MessageListResponse{
		Messages: make([]MessageResponse, 0, len(messages)),
	}

	for i := range messages {
		if msgResp := FromDomainMessage(&messages[i]); msgResp != nil {
			resp.Messages = append(resp.Messages, *msgResp)
		}
	}

	return resp
}
