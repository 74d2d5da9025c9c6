// Package ws provides the operator websocket hub. Merchant consoles connect
// once and receive new-order and reminder events as JSON frames. Delivery is
// best effort: a slow or dead console is dropped, never waited on.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"foodorder/internal/core/ports"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// Hub maintains the set of connected operator consoles and broadcasts events
// to all of them. It implements ports.NotificationDispatcher.
type Hub struct {
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	logger     *slog.Logger
}

// NewHub creates an operator hub. Call Run in a goroutine before serving
// connections.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, sendBufferSize),
		logger:     logger,
	}
}

// Run owns the client set. All registration and broadcast traffic funnels
// through this loop, so the map needs no lock.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.logger.Debug("operator console connected", slog.Int("connected", len(h.clients)))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.logger.Debug("operator console disconnected", slog.Int("connected", len(h.clients)))
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// Console cannot keep up; drop it.
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Broadcast pushes an event to every connected console without blocking the
// caller. Events are dropped when the hub itself is saturated.
func (h *Hub) Broadcast(event ports.OperatorEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Warn("failed to encode operator event", slog.String("error", err.Error()))
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("operator event dropped, hub saturated", slog.Int("type", event.Type))
	}
}

// ServeWS upgrades an HTTP request to a websocket connection and registers it
// with the hub.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	c := &client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

// client is one connected operator console.
type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// writePump drains the send channel into the connection and keeps the
// connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump consumes control frames until the console goes away, then
// unregisters it. Consoles never send application data.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
