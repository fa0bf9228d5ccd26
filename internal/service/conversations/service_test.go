package conversations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndemina/Salon-AdminService/internal/domain"
	"github.com/ndemina/Salon-AdminService/internal/integrations/pushchannel"
	"github.com/ndemina/Salon-AdminService/internal/service/conversations/models"
)

type fakeStore struct {
	messages []domain.Message
	nextID   int
}

func (s *fakeStore) ListMessages(_ context.Context, conversationID string) ([]domain.Message, error) {
	matched := make([]domain.Message, 0)
	for _, msg := range s.messages {
		if msg.ConversationID == conversationID {
			matched = append(matched, msg)
		}
	}
	return matched, nil
}

func (s *fakeStore) AppendMessage(_ context.Context, msg domain.Message) (*domain.Message, error) {
	s.nextID++
	msg.ID = fmt.Sprintf("msg%d", s.nextID)
	s.messages = append(s.messages, msg)
	return &msg, nil
}

type fakePusher struct {
	sent []pushchannel.OutboundMessage
	err  error
}

func (p *fakePusher) SendMessage(_ context.Context, msg pushchannel.OutboundMessage) error {
	p.sent = append(p.sent, msg)
	return p.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestService(store *fakeStore, pusher *fakePusher) *Service {
	svc := NewService(store, pusher, NewHub(nopLogger{}), nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)}
	return svc
}

func TestService_SendMessage(t *testing.T) {
	store := &fakeStore{}
	pusher := &fakePusher{}
	svc := newTestService(store, pusher)

	resp, err := svc.SendMessage(context.Background(), "conv1", &models.SendMessageRequest{
		Sender: "admin",
		Body:   "Ваша запись подтверждена",
	})
	require.NoError(t, err)

	assert.Equal(t, "msg1", resp.ID)
	assert.Equal(t, "outbound", resp.Direction)

	// Сообщение сохранено и доставлено через push-канал
	require.Len(t, store.messages, 1)
	require.Len(t, pusher.sent, 1)
	assert.Equal(t, "conv1", pusher.sent[0].ConversationID)
}

func TestService_SendMessage_PushFailureDoesNotFail(t *testing.T) {
	store := &fakeStore{}
	pusher := &fakePusher{err: errors.New("gateway timeout")}
	svc := newTestService(store, pusher)

	// Сообщение сохранено, сбой доставки только логируется
	resp, err := svc.SendMessage(context.Background(), "conv1", &models.SendMessageRequest{
		Sender: "admin",
		Body:   "Hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	require.Len(t, store.messages, 1)
}

func TestService_SendMessage_Validation(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakePusher{})

	_, err := svc.SendMessage(context.Background(), "", &models.SendMessageRequest{Sender: "admin", Body: "Hi"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SendMessage(context.Background(), "conv1", &models.SendMessageRequest{Sender: "admin"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SendMessage(context.Background(), "conv1", &models.SendMessageRequest{Body: "Hi"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_SendMessage_BodyTooLong(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakePusher{})

	_, err := svc.SendMessage(context.Background(), "conv1", &models.SendMessageRequest{
		Sender: "admin",
		Body:   strings.Repeat("a", domain.MaxMessageLength+1),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, store.messages)
}

func TestService_GetMessages_FiltersByConversation(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, &fakePusher{})

	_, err := svc.SendMessage(context.Background(), "conv1", &models.SendMessageRequest{Sender: "admin", Body: "A"})
	require.NoError(t, err)
	_, err = svc.SendMessage(context.Background(), "conv2", &models.SendMessageRequest{Sender: "admin", Body: "B"})
	require.NoError(t, err)

	resp, err := svc.GetMessages(context.Background(), "conv1")
	require.NoError(t, err)

	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "A", resp.Messages[0].Body)
}

func TestService_RecordInbound(t *testing.T) {
	store := &fakeStore{}
	pusher := &fakePusher{}
	svc := newTestService(store, pusher)

	resp, err := svc.RecordInbound(context.Background(), "conv1", "Maria", "Можно перенести запись?")
	require.NoError(t, err)

	assert.Equal(t, "inbound", resp.Direction)
	assert.Equal(t, "Maria", resp.Sender)

	// Входящее сообщение не уходит обратно в push-канал
	assert.Empty(t, pusher.sent)
}
