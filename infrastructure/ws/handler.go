package ws

import (
	"chat-relay/auth"
	"chat-relay/contract"
	"chat-relay/errors"
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/gorilla/websocket"
)

// Handler upgrades /ws requests and binds each socket to a session.
type Handler struct {
	log      *slog.Logger
	gateway  contract.IGateway
	upgrader websocket.Upgrader
	opts     Options
}

func NewHandler(log *slog.Logger, gateway contract.IGateway, opts Options) *Handler {
	h := &Handler{log: log, gateway: gateway, opts: opts}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if len(h.opts.AllowedOrigins) == 0 {
		return true
	}
	return slices.Contains(h.opts.AllowedOrigins, r.Header.Get("Origin"))
}

// ServeHTTP upgrades first and authenticates afterwards. A rejected client
// receives a 4401 close frame.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	socket, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("Upgrade failed", "error", err)
		return
	}
	conn := newConn(socket, h.opts, h.log)
	go conn.writeLoop()

	ctx := r.Context()
	session, err := h.gateway.Open(ctx, auth.BearerToken(r), conn)
	if err != nil {
		code, reason := websocket.CloseInternalServerErr, "unable to join conversations"
		if stderrors.Is(err, errors.ErrMissingToken) || stderrors.Is(err, errors.ErrInvalidToken) {
			code, reason = CloseUnauthorized, err.Error()
		}
		h.log.Info("Connection refused", "connection", conn.ID(), "code", code, "error", err)
		conn.closeWith(code, reason)
		return
	}

	conn.readLoop(func(raw []byte) {
		session.Handle(ctx, raw)
	})
	session.Close(context.WithoutCancel(ctx))
	conn.shutdown()
}
