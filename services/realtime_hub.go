package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UID  string
	Conn *websocket.Conn
	mu   sync.Mutex
}

func (c *WSClient) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// Ping keeps the connection alive through proxies.
func (c *WSClient) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

// RealtimeHub tracks the open notification sockets of each user.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UID] == nil {
		h.clients[c.UID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UID][c] = struct{}{}
	h.mu.Unlock()
}

// Unregister is idempotent; the read loop and the ping loop may both call it.
func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	set := h.clients[c.UID]
	_, present := set[c]
	if present {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UID)
		}
	}
	h.mu.Unlock()
	if present {
		_ = c.Conn.Close()
	}
}

func (h *RealtimeHub) Connected(uid string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[uid])
}

func (h *RealtimeHub) Broadcast(uid string, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[uid] {
		_ = c.write(websocket.TextMessage, msg)
	}
}
