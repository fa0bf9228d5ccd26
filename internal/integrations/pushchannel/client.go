package pushchannel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент push-канала исходящих сообщений (мессенджер-шлюз)
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента push-канала
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendMessage доставляет исходящее сообщение в диалог клиента
func (c *Client) SendMessage(ctx context.Context, msg OutboundMessage) error {
	return c.post(ctx, "/v1/messages", msg)
}

// NotifyWithGracefulDegradation отправляет служебное уведомление о событии записи
// Канал не является источником истины: при недоступности возвращается
// ErrChannelDegraded, запись при этом считается состоявшейся
func (c *Client) NotifyWithGracefulDegradation(ctx context.Context, notification Notification) error {
	err := c.post(ctx, "/v1/notifications", notification)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return err
		}

		c.log.Error("PushChannel unavailable, applying graceful degradation for conversation_id=%s: %v",
			notification.ConversationID, err)
		return fmt.Errorf("%w: conversation_id=%s, error=%v", ErrChannelDegraded, notification.ConversationID, err)
	}

	c.log.Info("Notification delivered for conversation_id=%s, event=%s",
		notification.ConversationID, notification.Event)
	return nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var delivery deliveryResponse
	if err := json.NewDecoder(resp.Body).Decode(&delivery); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !delivery.Delivered {
		return fmt.Errorf("%w: channel reported delivery failure", ErrInvalidResponse)
	}

	return nil
}
