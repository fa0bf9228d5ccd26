package conversations

import (
	"context"
	"fmt"
	"time"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	"github.com/ndemina/Salon-AdminService/internal/integrations/pushchannel"
	"github.com/ndemina/Salon-AdminService/internal/service/conversations/models"
)

// Service сервис для работы с диалогами клиентов
// История сообщений живёт во внешнем табличном хранилище,
// исходящие сообщения доставляются клиенту через push-канал,
// подписчики живой ленты получают события через хаб
type Service struct {
	store        MessageStore
	pusher       Pusher
	hub          *Hub
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса диалогов
func NewService(store MessageStore, pusher Pusher, hub *Hub, logger Logger) *Service {
	return &Service{
		store:        store,
		pusher:       pusher,
		hub:          hub,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetMessages возвращает историю сообщений диалога в порядке отправки
func (s *Service) GetMessages(ctx context.Context, conversationID string) (*models.MessageListResponse, error) {
	if conversationID == "" {
		return nil, fmt.Errorf("%w: conversationId is required", ErrInvalidInput)
	}

	s.logger.Info("GetMessages: fetching messages for conversation=%s", conversationID)

	messages, err := s.store.ListMessages(ctx, conversationID)
	if err != nil {
		s.logger.Error("GetMessages: store error for conversation=%s: %v", conversationID, err)
		return nil, fmt.Errorf("%w: GetMessages - store error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMessages: successfully fetched %d messages for conversation=%s",
		len(messages), conversationID)
	return models.FromDomainMessageList(messages), nil
}

// SendMessage отправляет исходящее сообщение в диалог:
// сообщение сохраняется в хранилище, доставляется через push-канал
// и рассылается подписчикам живой ленты.
// Сбой доставки после сохранения не откатывает сообщение
func (s *Service) SendMessage(ctx context.Context, conversationID string, req *models.SendMessageRequest) (*models.MessageResponse, error) {
	if conversationID == "" {
		return nil, fmt.Errorf("%w: conversationId is required", ErrInvalidInput)
	}
	if req.Body == "" {
		return nil, fmt.Errorf("%w: body is required", ErrInvalidInput)
	}
	if len(req.Body) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: body exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}
	if req.Sender == "" {
		return nil, fmt.Errorf("%w: sender is required", ErrInvalidInput)
	}

	s.logger.Info("SendMessage: sending message to conversation=%s from sender=%s", conversationID, req.Sender)

	msg := domain.Message{
		ConversationID: conversationID,
		Direction:      domain.DirectionOutbound,
		Sender:         req.Sender,
		Body:           req.Body,
		SentAt:         s.timeProvider.Now(),
	}

	saved, err := s.store.AppendMessage(ctx, msg)
	if err != nil {
		s.logger.Error("SendMessage: store error for conversation=%s: %v", conversationID, err)
		return nil, fmt.Errorf("%w: SendMessage - store error: %v", ErrInternal, err)
	}

	// Доставка клиенту через push-канал, best effort
	if err := s.pusher.SendMessage(ctx, pushchannel.OutboundMessage{
		ConversationID: conversationID,
		Body:           req.Body,
		Sender:         req.Sender,
	}); err != nil {
		s.logger.Warn("SendMessage: push delivery failed for conversation=%s: %v", conversationID, err)
	}

	s.broadcast(saved)

	s.logger.Info("SendMessage: successfully sent message id=%s to conversation=%s", saved.ID, conversationID)
	return models.FromDomainMessage(saved), nil
}

// RecordInbound сохраняет входящее сообщение клиента и рассылает его
// подписчикам живой ленты. Вызывается из webhook push-канала
func (s *Service) RecordInbound(ctx context.Context, conversationID, sender, body string) (*models.MessageResponse, error) {
	if conversationID == "" || body == "" {
		return nil, fmt.Errorf("%w: conversationId and body are required", ErrInvalidInput)
	}

	s.logger.Info("RecordInbound: recording inbound message for conversation=%s", conversationID)

	msg := domain.Message{
		ConversationID: conversationID,
		Direction:      domain.DirectionInbound,
		Sender:         sender,
		Body:           body,
		SentAt:         s.timeProvider.Now(),
	}

	saved, err := s.store.AppendMessage(ctx, msg)
	if err != nil {
		s.logger.Error("RecordInbound: store error for conversation=%s: %v", conversationID, err)
		return nil, fmt.Errorf("%w: RecordInbound - store error: %v", ErrInternal, err)
	}

	s.broadcast(saved)

	return models.FromDomainMessage(saved), nil
}

// Hub возвращает хаб подписчиков живой ленты
func (s *Service) Hub() *Hub {
	return s.hub
}

func (s *Service) broadcast(msg *domain.Message) {
	s.hub.Broadcast(InboxEvent{
		Type:           "message",
		ConversationID: msg.ConversationID,
		Direction:      string(msg.Direction),
		Sender:         msg.Sender,
		Body:           msg.Body,
		SentAt:         msg.SentAt.Format(time.RFC3339),
	})
}
