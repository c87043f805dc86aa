package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

type SessionState int32

const (
	Connecting SessionState = iota
	Authenticated
	Joined
	Closed
)

func (s SessionState) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Authenticated:
		return "authenticated"
	case Joined:
		return "joined"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

// Session is one authenticated connection. Its room memberships are only
// changed through its own methods.
type Session struct {
	id        domain.ConnectionID
	identity  domain.Identity
	sink      contract.EventSink
	gateway   *Gateway
	state     atomic.Int32
	closeOnce sync.Once
}

func (s *Session) ID() domain.ConnectionID { return s.id }

func (s *Session) UserID() domain.UserID { return s.identity.UserID }

func (s *Session) Identity() domain.Identity { return s.identity }

func (s *Session) State() SessionState { return SessionState(s.state.Load()) }

// Rooms lists the rooms the session is currently joined to.
func (s *Session) Rooms() []domain.RoomID {
	return s.gateway.rooms.RoomsOf(s.id)
}

func (s *Session) active() bool {
	state := s.State()
	return state == Authenticated || state == Joined
}

// Join adds the session to a conversation room the user is a member of.
func (s *Session) Join(ctx context.Context, conversationID domain.ConversationID) error {
	if !s.active() {
		return errors.ErrSessionClosed
	}
	ok, err := s.gateway.membership.IsMember(ctx, conversationID, s.UserID())
	if err != nil {
		return fmt.Errorf("checking membership of %s: %w", conversationID, err)
	}
	if !ok {
		return errors.ErrNotMember
	}
	// The membership lookup may have raced with a disconnect
	if !s.active() {
		return errors.ErrSessionClosed
	}
	s.gateway.rooms.Join(domain.ConversationRoom(conversationID), s.sink)
	return nil
}

func (s *Session) Leave(conversationID domain.ConversationID) {
	s.gateway.rooms.Leave(domain.ConversationRoom(conversationID), s.id)
}

func (s *Session) EmitToSelf(ctx context.Context, e event.Event) error {
	if s.State() == Closed {
		return errors.ErrSessionClosed
	}
	sinkCtx, cancel := context.WithTimeout(ctx, s.gateway.router.sinkTimeout)
	defer cancel()
	return s.sink.Consume(sinkCtx, e)
}

// TypingStart notifies the other members of the conversation. Nothing is
// stored and nothing stops it on the server side: clients time it out.
func (s *Session) TypingStart(ctx context.Context, conversationID domain.ConversationID) error {
	return s.typing(ctx, conversationID, true)
}

func (s *Session) TypingStop(ctx context.Context, conversationID domain.ConversationID) error {
	return s.typing(ctx, conversationID, false)
}

func (s *Session) typing(ctx context.Context, conversationID domain.ConversationID, isTyping bool) error {
	if !s.active() {
		return errors.ErrSessionClosed
	}
	if !s.inRoom(domain.ConversationRoom(conversationID)) {
		return errors.ErrNotMember
	}
	s.gateway.router.deliverExcept(ctx, conversationID, s.id, event.TypingChanged{
		UserID:         s.UserID(),
		ConversationID: conversationID,
		IsTyping:       isTyping,
	})
	return nil
}

func (s *Session) inRoom(roomID domain.RoomID) bool {
	for _, joined := range s.Rooms() {
		if joined == roomID {
			return true
		}
	}
	return false
}

// Handle dispatches one inbound frame. A rejected frame is reported to the
// sender and the connection stays open.
func (s *Session) Handle(ctx context.Context, raw []byte) {
	name, err := s.gateway.dispatcher.Dispatch(ctx, s, raw)
	if err == nil {
		return
	}
	s.gateway.log.Debug("Client event rejected", "user", s.UserID(), "event", name, "error", err)
	if emitErr := s.EmitToSelf(ctx, event.Error{Event: name, Message: err.Error()}); emitErr != nil {
		s.gateway.log.Debug("Unable to report rejected event", "user", s.UserID(), "error", emitErr)
	}
}

// Close tears the session down. It is safe to call more than once.
func (s *Session) Close(ctx context.Context) {
	s.closeOnce.Do(func() {
		wasJoined := s.State() == Joined
		s.state.Store(int32(Closed))
		s.gateway.teardown(ctx, s, wasJoined)
	})
}
