package live_inbox

import (
	"net/http"

	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      SubscriberHub
	upgrader websocket.Upgrader
	logger   Logger
}

func NewHandler(hub SubscriberHub, logger Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Панель администратора и API живут за одним gateway
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Handle GET /api/v1/inbox/live
// Апгрейдит соединение до websocket и подписывает его на события ленты.
// Клиент ничего не отправляет, цикл чтения нужен только чтобы заметить разрыв.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("GET /inbox/live - Upgrade failed: %v", err)
		return
	}

	h.hub.Register(conn)

	go h.readLoop(conn)
}

func (h *Handler) readLoop(conn *websocket.Conn) {
	defer h.hub.Unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("GET /inbox/live - Subscriber read error: %v", err)
			}
			return
		}
	}
}
