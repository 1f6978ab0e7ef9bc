package main

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufSize    = 256
	maxFeedClients = 100
)

// FeedHub fans collision events out to websocket subscribers
type FeedHub struct {
	mu      sync.RWMutex
	clients map[*FeedClient]struct{}
}

// NewFeedHub creates an empty FeedHub
func NewFeedHub() *FeedHub {
	return &FeedHub{clients: make(map[*FeedClient]struct{})}
}

// Publish encodes ev once and queues it for every subscriber. Subscribers
// with a full buffer miss the event.
func (h *FeedHub) Publish(ev CollisionEvent) {
	data, err := EncodeEvent(ev)
	if err != nil {
		Log.Warnw("encode collision event", "err", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

// register adds a client; false when the hub is full
func (h *FeedHub) register(c *FeedClient) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) >= maxFeedClients {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *FeedHub) unregister(c *FeedClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// ClientCount returns the number of subscribers
func (h *FeedHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FeedClient is one websocket subscriber
type FeedClient struct {
	hub  *FeedHub
	conn *websocket.Conn
	send chan []byte
}

// NewFeedClient creates a FeedClient for conn
func NewFeedClient(hub *FeedHub, conn *websocket.Conn) *FeedClient {
	return &FeedClient{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufSize),
	}
}

// ReadPump discards client frames and detects disconnects
func (c *FeedClient) ReadPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				Log.Debugw("feed read error", "err", err)
			}
			return
		}
	}
}

// WritePump writes queued events and keepalive pings
func (c *FeedClient) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
