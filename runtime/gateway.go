package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/observability"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const welcomeMessage = "Successfully connected to chat server"

// Gateway runs the connection handshake and owns the shared state sessions
// operate on.
type Gateway struct {
	log        *slog.Logger
	presence   contract.IPresenceRegistry
	rooms      contract.IRoomRegistry
	router     *Router
	membership contract.MembershipLookup
	verifier   contract.TokenVerifier
	monitoring *observability.MonitoringManager
	dispatcher *Dispatcher
	now        func() time.Time
}

func NewGateway(log *slog.Logger,
	presence contract.IPresenceRegistry,
	rooms contract.IRoomRegistry,
	router *Router,
	membership contract.MembershipLookup,
	verifier contract.TokenVerifier,
	monitoring *observability.MonitoringManager) *Gateway {
	return &Gateway{
		log:        log,
		presence:   presence,
		rooms:      rooms,
		router:     router,
		membership: membership,
		verifier:   verifier,
		monitoring: monitoring,
		dispatcher: NewDispatcher(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Open authenticates a freshly accepted connection and joins its rooms.
// A rejected credential leaves no trace in presence or rooms.
func (g *Gateway) Open(ctx context.Context, token string, sink contract.EventSink) (contract.ISession, error) {
	if token == "" {
		g.monitoring.IncrRejectedHandshakes()
		return nil, errors.ErrMissingToken
	}
	identity, err := g.verifier.Verify(token)
	if err != nil {
		g.monitoring.IncrRejectedHandshakes()
		g.log.Debug("Handshake rejected", "error", err)
		return nil, errors.ErrInvalidToken
	}

	session := &Session{
		id:       sink.ID(),
		identity: identity,
		sink:     sink,
		gateway:  g,
	}
	if session.id == "" {
		session.id = domain.ConnectionID(uuid.NewString())
	}

	// Memberships are resolved first: a failed lookup leaves presence and rooms untouched
	conversations, err := g.membership.ConversationIDsForUser(ctx, identity.UserID)
	if err != nil {
		g.log.Warn("Handshake aborted", "user", identity.UserID, "error", err)
		return nil, fmt.Errorf("loading conversations of %s: %w", identity.UserID, err)
	}

	// Authenticated: the user becomes reachable through its private room
	session.state.Store(int32(Authenticated))
	g.presence.MarkOnline(identity.UserID, session.id)
	g.rooms.Join(domain.UserRoom(identity.UserID), sink)
	g.monitoring.ConnectionOpened()

	for _, conversationID := range conversations {
		g.rooms.Join(domain.ConversationRoom(conversationID), sink)
	}
	session.state.Store(int32(Joined))

	g.router.Broadcast(ctx, event.PresenceChanged{UserID: identity.UserID, Timestamp: g.now(), Online: true})
	if err := session.EmitToSelf(ctx, event.Welcome{Message: welcomeMessage, UserID: identity.UserID}); err != nil {
		g.log.Warn("Unable to greet connection", "user", identity.UserID, "error", err)
	}

	g.log.Info("User connected",
		"user", identity.UserID,
		"connection", session.id,
		"conversations", len(conversations))
	return session, nil
}

func (g *Gateway) teardown(ctx context.Context, s *Session, announce bool) {
	g.rooms.RemoveConnection(s.id)
	released := g.presence.Release(s.UserID(), s.id)
	g.monitoring.ConnectionClosed()

	if released && announce {
		g.router.Broadcast(ctx, event.PresenceChanged{UserID: s.UserID(), Timestamp: g.now(), Online: false})
	}
	g.log.Info("User disconnected", "user", s.UserID(), "connection", s.id, "released", released)
}
