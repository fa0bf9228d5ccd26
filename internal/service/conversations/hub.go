package conversations

import (
	"sync"

	"github.com/gorilla/websocket"
)

// InboxEvent событие живой ленты входящих для подписчиков панели
type InboxEvent struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversationId"`
	Direction      string `json:"direction"`
	Sender         string `json:"sender"`
	Body           string `json:"body"`
	SentAt         string `json:"sentAt"`
}

// Hub рассылает события живой ленты всем подключённым websocket-клиентам
// Подписчики - открытые вкладки панели администратора
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
	log     Logger
}

// NewHub создает новый хаб подписчиков
func NewHub(log Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		log:     log,
	}
}

// Register добавляет подключение в список подписчиков
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	h.log.Info("Hub: subscriber connected, total=%d", count)
}

// Unregister удаляет подключение и закрывает его
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	count := len(h.clients)
	h.mu.Unlock()

	_ = conn.Close()
	h.log.Info("Hub: subscriber disconnected, total=%d", count)
}

// Broadcast отправляет событие всем подписчикам
// Подключения с ошибкой записи отключаются
func (h *Hub) Broadcast(event InboxEvent) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.log.Warn("Hub: failed to write to subscriber, dropping connection: %v", err)
			h.Unregister(conn)
		}
	}
}

// Close отключает всех подписчиков
func (h *Hub) Close() {
	h.mu.Lock()
	for conn := range h.clients {
		_ = conn.Close()
	}
	h.clients = make(map[*websocket.Conn]struct{})
	h.mu.Unlock()
}
