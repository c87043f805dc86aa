package ws

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const CloseUnauthorized = event.CloseUnauthorized

type Options struct {
	SendBuffer     int
	PingInterval   time.Duration
	PongWait       time.Duration
	WriteWait      time.Duration
	MaxMessageSize int64
	AllowedOrigins []string
}

func DefaultOptions() Options {
	return Options{
		SendBuffer:     256,
		PingInterval:   25 * time.Second,
		PongWait:       60 * time.Second,
		WriteWait:      10 * time.Second,
		MaxMessageSize: 64 * 1024,
	}
}

// Conn is the event sink of one socket. Frames leave in the order Consume accepted them.
type Conn struct {
	id        domain.ConnectionID
	ws        *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	opts      Options
	log       *slog.Logger
}

func newConn(ws *websocket.Conn, opts Options, log *slog.Logger) *Conn {
	id := domain.ConnectionID(uuid.NewString())
	return &Conn{
		id:   id,
		ws:   ws,
		send: make(chan []byte, max(opts.SendBuffer, 1)),
		done: make(chan struct{}),
		opts: opts,
		log:  log.With("connection", id),
	}
}

func (c *Conn) ID() domain.ConnectionID { return c.id }

// Consume never blocks: a slow reader gets ErrSendQueueFull instead of stalling the router.
func (c *Conn) Consume(ctx context.Context, e event.Event) error {
	data, err := event.Encode(e)
	if err != nil {
		return err
	}
	select {
	case <-c.done:
		return errors.ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	select {
	case c.send <- data:
		return nil
	default:
		return errors.ErrSendQueueFull
	}
}

func (c *Conn) writeLoop() {
	ticker := time.NewTicker(c.opts.PingInterval)
	defer func() {
		ticker.Stop()
		c.shutdown()
	}()

	for {
		select {
		case <-c.done:
			return
		case data := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				c.log.Debug("Write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.Debug("Ping failed", "error", err)
				return
			}
		}
	}
}

// readLoop hands every inbound frame to handle until the peer goes away.
func (c *Conn) readLoop(handle func(raw []byte)) {
	c.ws.SetReadLimit(c.opts.MaxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.opts.PongWait))
	})

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug("Connection lost", "error", err)
			}
			return
		}
		handle(raw)
	}
}

// closeWith sends a close frame carrying code and reason, then drops the socket.
func (c *Conn) closeWith(code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	if err := c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(c.opts.WriteWait)); err != nil {
		c.log.Debug("Close frame not sent", "error", err)
	}
	c.shutdown()
}

func (c *Conn) shutdown() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.ws.Close()
	})
}
