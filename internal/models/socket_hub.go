package models

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

type SocketClient struct {
	Conn   *websocket.Conn
	UserId uint
}

// SocketHub is the connection registry for the chat relay, keyed by
// conversation id. It is owned by the handler that creates it, never
// package-global, so it can be swapped out in tests.
type SocketHub struct {
	Conversations map[uint][]*SocketClient
	Mu            sync.Mutex
	Redis         *redis.Client
}
