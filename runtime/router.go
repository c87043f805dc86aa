package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"
)

// Router fans events out to the live connections of a room.
//
// A failed send is logged and counted, never queued or retried. Sinks are
// consumed one after the other from the caller's goroutine so a connection
// sees events in invocation order.
type Router struct {
	log         *slog.Logger
	presence    contract.IPresenceRegistry
	rooms       contract.IRoomRegistry
	monitoring  *observability.MonitoringManager
	sinkTimeout time.Duration
}

func NewRouter(log *slog.Logger,
	presence contract.IPresenceRegistry,
	rooms contract.IRoomRegistry,
	monitoring *observability.MonitoringManager,
	sinkTimeout time.Duration) *Router {
	return &Router{
		log:         log,
		presence:    presence,
		rooms:       rooms,
		monitoring:  monitoring,
		sinkTimeout: sinkTimeout,
	}
}

// DeliverToUser reports whether the user was reachable. Enqueueing for an
// unreachable user is the caller's decision.
func (r *Router) DeliverToUser(ctx context.Context, userID domain.UserID, e event.Event) bool {
	if !r.presence.IsOnline(userID) {
		return false
	}
	sinks := r.rooms.Members(domain.UserRoom(userID))
	if len(sinks) == 0 {
		return false
	}
	r.fanout(ctx, domain.UserRoom(userID), sinks, "", e)
	return true
}

func (r *Router) DeliverToConversation(ctx context.Context, conversationID domain.ConversationID, e event.Event) {
	room := domain.ConversationRoom(conversationID)
	r.fanout(ctx, room, r.rooms.Members(room), "", e)
}

// DeliverToConversationExceptSender skips the sender's current connection.
func (r *Router) DeliverToConversationExceptSender(ctx context.Context, conversationID domain.ConversationID,
	senderID domain.UserID, e event.Event) {
	skip, _ := r.presence.ConnectionFor(senderID)
	r.deliverExcept(ctx, conversationID, skip, e)
}

// deliverExcept is used by a session to reach its peers without echoing to itself.
func (r *Router) deliverExcept(ctx context.Context, conversationID domain.ConversationID,
	skip domain.ConnectionID, e event.Event) {
	room := domain.ConversationRoom(conversationID)
	r.fanout(ctx, room, r.rooms.Members(room), skip, e)
}

// Broadcast reaches every connected client.
func (r *Router) Broadcast(ctx context.Context, e event.Event) {
	r.fanout(ctx, "*", r.rooms.All(), "", e)
}

func (r *Router) fanout(ctx context.Context, room domain.RoomID, sinks []contract.EventSink,
	skip domain.ConnectionID, e event.Event) {
	for _, sink := range sinks {
		if skip != "" && sink.ID() == skip {
			continue
		}
		r.consume(ctx, room, sink, e)
	}
}

func (r *Router) consume(ctx context.Context, room domain.RoomID, sink contract.EventSink, e event.Event) {
	sinkCtx, cancel := context.WithTimeout(ctx, r.sinkTimeout)
	defer cancel()

	if err := sink.Consume(sinkCtx, e); err != nil {
		r.monitoring.IncrDropped()
		r.log.Warn("Delivery failed",
			"event", e.Name(),
			"room", room,
			"connection", sink.ID(),
			"error", err)
		return
	}
	r.monitoring.IncrDelivered()
}
