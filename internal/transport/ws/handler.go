// Package ws serves browser tabs over WebSocket. Each connection owns one
// tab.Tab; the browser sends commands and receives full view snapshots.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/heartmarshall/moodverse-backend/internal/metrics"
	"github.com/heartmarshall/moodverse-backend/internal/tab"
	"github.com/heartmarshall/moodverse-backend/pkg/ctxutil"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// TabFactory creates the tab behind a new connection.
type TabFactory func(ctx context.Context) *tab.Tab

// Handler upgrades requests to tab connections.
type Handler struct {
	log         *slog.Logger
	newTab      TabFactory
	upgrader    websocket.Upgrader
	maxMessage  int64
	authTimeout time.Duration

	mu     sync.Mutex
	conns  map[uuid.UUID]*websocket.Conn
	closed bool
}

// Options tune the handler.
type Options struct {
	// AllowedOrigins lists accepted Origin headers; "*" accepts any.
	AllowedOrigins []string
	// MaxMessageBytes bounds one incoming message, frames included.
	MaxMessageBytes int64
	// AuthTimeout bounds sign-in, sign-up, sign-out and resume.
	AuthTimeout time.Duration
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger, newTab TabFactory, opts Options) *Handler {
	h := &Handler{
		log:         logger.With("handler", "ws"),
		newTab:      newTab,
		maxMessage:  opts.MaxMessageBytes,
		authTimeout: opts.AuthTimeout,
		conns:       make(map[uuid.UUID]*websocket.Conn),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:   4096,
		WriteBufferSize:  4096,
		HandshakeTimeout: 10 * time.Second,
		CheckOrigin:      originChecker(opts.AllowedOrigins),
	}
	return h
}

func originChecker(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return false
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}

// ServeHTTP runs one tab for the lifetime of the connection.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		metrics.WSErrors.WithLabelValues("upgrade").Inc()
		h.log.WarnContext(r.Context(), "websocket upgrade", slog.String("error", err.Error()))
		return
	}

	tabID := uuid.New()
	if !h.register(tabID, conn) {
		_ = conn.Close()
		return
	}
	defer h.unregister(tabID)

	metrics.TrackTab(true)
	defer metrics.TrackTab(false)

	ctx, cancel := context.WithCancel(ctxutil.WithTabID(context.WithoutCancel(r.Context()), tabID))
	defer cancel()

	t := h.newTab(ctx)
	defer t.Close()

	c := &connection{
		h:    h,
		log:  h.log.With(slog.String("tab_id", tabID.String())),
		conn: conn,
		tab:  t,
		send: make(chan Message, sendBuffer),
	}
	c.log.InfoContext(ctx, "tab connected")

	c.enqueue(Message{Type: MsgCamera, Camera: ptr(t.Camera())})
	c.pushView()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.writePump(ctx)
	}()

	c.readPump(ctx)

	cancel()
	c.inflight.Wait()
	<-done
	c.log.InfoContext(ctx, "tab disconnected")
}

// Shutdown closes every open connection. New connections are refused.
func (h *Handler) Shutdown() {
	h.mu.Lock()
	h.closed = true
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		_ = c.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = c.Close()
	}
}

func (h *Handler) register(id uuid.UUID, c *websocket.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.conns[id] = c
	return true
}

func (h *Handler) unregister(id uuid.UUID) {
	h.mu.Lock()
	delete(h.conns, id)
	h.mu.Unlock()
}

type connection struct {
	h    *Handler
	log  *slog.Logger
	conn *websocket.Conn
	tab  *tab.Tab
	send chan Message

	inflight sync.WaitGroup
	// lastTokens is owned by the write pump after the first push.
	lastTokens string
}

func (c *connection) readPump(ctx context.Context) {
	if c.h.maxMessage > 0 {
		c.conn.SetReadLimit(c.h.maxMessage)
	}
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				metrics.WSErrors.WithLabelValues("read").Inc()
				c.log.WarnContext(ctx, "websocket read", slog.String("error", err.Error()))
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))

		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			metrics.WSErrors.WithLabelValues("decode").Inc()
			c.enqueue(Message{Type: MsgError, Error: "malformed message"})
			continue
		}
		metrics.WSMessagesReceived.WithLabelValues(commandLabel(cmd.Type)).Inc()

		c.dispatch(ctx, cmd)
	}
}

func (c *connection) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case <-c.tab.Changes():
			c.pushView()
		case msg := <-c.send:
			if err := c.write(msg); err != nil {
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

func (c *connection) write(msg Message) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(msg); err != nil {
		metrics.WSErrors.WithLabelValues("write").Inc()
		return err
	}
	metrics.WSMessagesSent.Inc()
	return nil
}

// pushView queues the current view and, when the refresh token changed, the
// new token pair.
func (c *connection) pushView() {
	v := c.tab.View()
	tokens := c.tab.Tokens()
	if tokens.RefreshToken != c.lastTokens {
		c.lastTokens = tokens.RefreshToken
		c.enqueue(Message{Type: MsgTokens, Tokens: &tokens})
	}
	c.enqueue(Message{Type: MsgView, View: &v})
}

// enqueue drops the message when the buffer is full; the next view
// supersedes it.
func (c *connection) enqueue(msg Message) {
	select {
	case c.send <- msg:
	default:
		metrics.WSErrors.WithLabelValues("overflow").Inc()
	}
}

func (c *connection) fail(cmd Command, err error) {
	c.enqueue(Message{Type: MsgError, ID: cmd.ID, Error: errorText(err)})
}

var errUnknownCommand = errors.New("unknown command")

func ptr[T any](v T) *T { return &v }
