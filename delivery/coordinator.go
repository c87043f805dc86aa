package delivery

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"nhooyr.io/websocket"
)

type State string

// maxQueuePage is the largest page the relay serves.
const maxQueuePage = 100

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateReconnecting State = "reconnecting"
)

// MessageHandler receives every message:new exactly once per id, whether it
// arrived live or from the offline queue. An error leaves a queued copy in place.
type MessageHandler func(ctx context.Context, msg domain.Message) error

// EventHandler receives raw frames of one event name.
type EventHandler func(ctx context.Context, name event.Name, data json.RawMessage)

// DrainReport summarizes one pass over the offline queue.
type DrainReport struct {
	Delivered int
	Failed    int
	Discarded int
}

// Coordinator keeps one user connected to the relay: it reconnects with
// backoff, drains the offline queue after every handshake and routes frames
// to the registered handlers.
type Coordinator struct {
	log   *slog.Logger
	cfg   Config
	queue *QueueClient
	seen  *lru.Cache[string, struct{}]

	mu       sync.RWMutex
	conn     *websocket.Conn
	state    State
	messages []MessageHandler
	handlers map[event.Name][]EventHandler
	watchers []func(State)

	// serializes message handlers between the read loop and a drain
	deliverMu sync.Mutex
}

func New(log *slog.Logger, cfg Config) (*Coordinator, error) {
	cfg.defaults()
	if cfg.BaseURL == "" || cfg.Token == "" {
		return nil, fmt.Errorf("base url and token are required")
	}
	seen, err := lru.New[string, struct{}](cfg.DedupSize)
	if err != nil {
		return nil, err
	}
	return &Coordinator{
		log:      log,
		cfg:      cfg,
		queue:    NewQueueClient(cfg.BaseURL, cfg.Token, cfg.HTTPClient),
		seen:     seen,
		state:    StateDisconnected,
		handlers: make(map[event.Name][]EventHandler),
	}, nil
}

func (c *Coordinator) OnMessage(h MessageHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, h)
}

func (c *Coordinator) On(name event.Name, h EventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[name] = append(c.handlers[name], h)
}

func (c *Coordinator) OnStateChange(h func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watchers = append(c.watchers, h)
}

func (c *Coordinator) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Coordinator) Queue() *QueueClient { return c.queue }

func (c *Coordinator) setState(state State) {
	c.mu.Lock()
	if c.state == state {
		c.mu.Unlock()
		return
	}
	c.state = state
	watchers := append([]func(State){}, c.watchers...)
	c.mu.Unlock()
	for _, w := range watchers {
		w(state)
	}
}

// Run blocks until ctx is cancelled, the credential is refused or the
// reconnect budget is spent. A refused credential is never retried.
func (c *Coordinator) Run(ctx context.Context) error {
	retry := backoff{
		base:        c.cfg.ReconnectBaseDelay,
		max:         c.cfg.ReconnectMaxDelay,
		maxAttempts: c.cfg.MaxReconnectAttempts,
	}
	defer c.setState(StateDisconnected)

	for {
		connected, err := c.session(ctx)
		switch {
		case ctx.Err() != nil:
			return nil
		case stderrors.Is(err, errors.ErrInvalidToken):
			c.log.Error("Relay refused the credential", "error", err)
			return err
		case !c.cfg.AutoReconnect:
			return err
		}
		if connected {
			retry.reset()
		}
		if retry.exhausted() {
			return fmt.Errorf("%w: %w", errors.ErrReconnectExhausted, err)
		}

		delay := retry.next()
		c.setState(StateReconnecting)
		c.log.Warn("Connection lost, reconnecting", "attempt", retry.attempt, "delay", delay, "error", err)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
	}
}

// session runs one connection to completion and reports whether the handshake succeeded.
func (c *Coordinator) session(ctx context.Context) (bool, error) {
	c.setState(StateConnecting)
	conn, _, err := websocket.Dial(ctx, c.socketURL(), nil)
	if err != nil {
		return false, fmt.Errorf("dial relay: %w", err)
	}
	defer conn.CloseNow()

	if err := c.handshake(ctx, conn); err != nil {
		return false, err
	}

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
	}()
	c.setState(StateConnected)

	readErr := make(chan error, 1)
	go func() { readErr <- c.readLoop(connCtx, conn) }()

	report, err := c.Drain(connCtx)
	if err != nil {
		c.log.Warn("Offline queue drain failed", "error", err)
	} else {
		c.log.Info("Offline queue drained",
			"delivered", report.Delivered,
			"failed", report.Failed,
			"discarded", report.Discarded)
	}

	err = <-readErr
	if ctx.Err() == nil {
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}
	return true, err
}

func (c *Coordinator) socketURL() string {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	base = strings.Replace(base, "https://", "wss://", 1)
	base = strings.Replace(base, "http://", "ws://", 1)
	return base + "/ws?" + url.Values{"token": {c.cfg.Token}}.Encode()
}

// handshake waits for the connected frame. Frames received before it are dispatched normally.
func (c *Coordinator) handshake(ctx context.Context, conn *websocket.Conn) error {
	hctx, cancel := context.WithTimeout(ctx, c.cfg.HandshakeTimeout)
	defer cancel()

	for {
		_, data, err := conn.Read(hctx)
		if err != nil {
			return closeError(err)
		}
		env, err := event.Decode(data)
		if err != nil {
			c.log.Debug("Ignoring malformed frame", "error", err)
			continue
		}
		c.dispatch(ctx, env)
		if env.Event == event.Connected {
			return nil
		}
	}
}

func closeError(err error) error {
	if websocket.CloseStatus(err) == event.CloseUnauthorized {
		return fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}
	return fmt.Errorf("%w: %v", errors.ErrHandshake, err)
}

func (c *Coordinator) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == event.CloseUnauthorized {
				return fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
			}
			return err
		}
		env, err := event.Decode(data)
		if err != nil {
			c.log.Debug("Ignoring malformed frame", "error", err)
			continue
		}
		c.dispatch(ctx, env)
	}
}

func (c *Coordinator) dispatch(ctx context.Context, env event.Envelope) {
	if env.Event == event.MessageNew {
		var msg domain.Message
		if err := json.Unmarshal(env.Data, &msg); err != nil {
			c.log.Warn("Malformed message frame", "error", err)
		} else if err := c.handle(ctx, msg); err != nil {
			c.log.Warn("Message handler failed", "message", msg.ID, "error", err)
		}
	}

	c.mu.RLock()
	handlers := append([]EventHandler{}, c.handlers[env.Event]...)
	c.mu.RUnlock()
	for _, h := range handlers {
		h(ctx, env.Event, env.Data)
	}
}

// handle runs the message handlers once per message id. Duplicates succeed silently.
func (c *Coordinator) handle(ctx context.Context, msg domain.Message) error {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	if found, _ := c.seen.ContainsOrAdd(msg.ID, struct{}{}); found {
		return nil
	}
	c.mu.RLock()
	handlers := append([]MessageHandler{}, c.messages...)
	c.mu.RUnlock()
	for _, h := range handlers {
		if err := h(ctx, msg); err != nil {
			c.seen.Remove(msg.ID)
			return err
		}
	}
	return nil
}

// Drain pages through the offline queue from its head, hands every entry to
// the message handlers and acknowledges what was handled. Entries that failed
// get one attempt recorded per drain and are dropped once they reach
// MaxDeliveryAttempts.
func (c *Coordinator) Drain(ctx context.Context) (DrainReport, error) {
	var report DrainReport
	// failed entries stay at the head of the queue, later pages are widened to skip them
	tried := make(map[string]struct{})
	for {
		limit := min(c.cfg.DrainPageSize+len(tried), maxQueuePage)
		page, err := c.queue.Pending(ctx, limit)
		if err != nil {
			return report, err
		}

		var handled []string
		fresh := 0
		for _, n := range page.Items {
			if _, ok := tried[n.ID]; ok {
				continue
			}
			fresh++
			if n.Attempts >= c.cfg.MaxDeliveryAttempts {
				c.log.Warn("Dropping undeliverable notification", "message", n.ID, "attempts", n.Attempts)
				handled = append(handled, n.ID)
				report.Discarded++
				continue
			}
			msg, err := n.ToMessage()
			if err != nil {
				c.log.Warn("Dropping unreadable notification", "message", n.ID, "error", err)
				handled = append(handled, n.ID)
				report.Discarded++
				continue
			}
			if err := c.handle(ctx, msg); err != nil {
				tried[n.ID] = struct{}{}
				report.Failed++
				if err := c.queue.RecordAttempt(ctx, n.ID); err != nil {
					c.log.Warn("Cannot record delivery attempt", "message", n.ID, "error", err)
				}
				continue
			}
			handled = append(handled, n.ID)
			report.Delivered++
		}

		if len(handled) > 0 {
			if err := c.queue.Acknowledge(ctx, handled); err != nil {
				return report, err
			}
		}
		if fresh == 0 || !page.HasMore {
			return report, nil
		}
	}
}

func (c *Coordinator) send(ctx context.Context, cmd event.Command) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return errors.ErrNotConnected
	}
	data, err := event.NewEnvelope(cmd.Name(), cmd)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}

func ref(conversationID domain.ConversationID) event.ConversationRef {
	return event.ConversationRef{ConversationID: conversationID}
}

func (c *Coordinator) StartTyping(ctx context.Context, conversationID domain.ConversationID) error {
	return c.send(ctx, event.StartTyping{ConversationRef: ref(conversationID)})
}

func (c *Coordinator) StopTyping(ctx context.Context, conversationID domain.ConversationID) error {
	return c.send(ctx, event.StopTyping{ConversationRef: ref(conversationID)})
}

func (c *Coordinator) JoinConversation(ctx context.Context, conversationID domain.ConversationID) error {
	return c.send(ctx, event.JoinConversation{ConversationRef: ref(conversationID)})
}

func (c *Coordinator) LeaveConversation(ctx context.Context, conversationID domain.ConversationID) error {
	return c.send(ctx, event.LeaveConversation{ConversationRef: ref(conversationID)})
}
