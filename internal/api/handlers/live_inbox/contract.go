package live_inbox

import (
	"github.com/gorilla/websocket"
)

type SubscriberHub interface {
	Register(conn *websocket.Conn)
	Unregister(conn *websocket.Conn)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
