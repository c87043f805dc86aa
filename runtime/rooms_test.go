package runtime

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Sink records every event it receives, in order.
type Sink struct {
	id     domain.ConnectionID
	mu     sync.Mutex
	events []event.Event
	err    error
}

func newSink() *Sink {
	return &Sink{id: domain.ConnectionID(uuid.NewString())}
}

func (s *Sink) ID() domain.ConnectionID { return s.id }

func (s *Sink) Consume(_ context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, e)
	return nil
}

func (s *Sink) Received() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.events...)
}

func (s *Sink) Names() []event.Name {
	var names []event.Name
	for _, e := range s.Received() {
		names = append(names, e.Name())
	}
	return names
}

func TestRoomRegistry_Join_One_Room_One_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRoomRegistry()
	roomID := domain.ConversationRoom("c1")
	sink := newSink()

	// Given no room exists
	req.Empty(registry.sessions)
	req.Empty(registry.roomMembers)

	// When a connection joins a room
	registry.Join(roomID, sink)

	// Then
	req.Len(registry.sessions, 1)
	req.Len(registry.roomMembers, 1)
	req.Contains(registry.roomMembers[roomID], sink.ID())
	req.Len(registry.Members(roomID), 1)
	req.Equal([]domain.RoomID{roomID}, registry.RoomsOf(sink.ID()))
}

func TestRoomRegistry_Join_One_Room_Multiple_Connections(t *testing.T) {
	req := require.New(t)
	registry := NewRoomRegistry()
	roomID := domain.ConversationRoom("c1")
	sink1, sink2 := newSink(), newSink()

	registry.Join(roomID, sink1)
	registry.Join(roomID, sink2)
	registry.Join(roomID, sink2)

	req.Len(registry.roomMembers[roomID], 2)
	req.ElementsMatch(registry.Members(roomID), registry.All())
}

func TestRoomRegistry_Leave_Removes_Empty_Room(t *testing.T) {
	req := require.New(t)
	registry := NewRoomRegistry()
	roomID := domain.ConversationRoom("c1")
	sink := newSink()

	// Given a connection in a room
	registry.Join(roomID, sink)

	// When it leaves the room
	registry.Leave(roomID, sink.ID())

	// Then the room doesn't exist anymore
	req.Empty(registry.roomMembers)
	req.Nil(registry.Members(roomID))
	req.Empty(registry.RoomsOf(sink.ID()))
}

func TestRoomRegistry_RemoveConnection(t *testing.T) {
	req := require.New(t)
	registry := NewRoomRegistry()
	sink1, sink2 := newSink(), newSink()

	registry.Join(domain.UserRoom("alice"), sink1)
	registry.Join(domain.ConversationRoom("c1"), sink1)
	registry.Join(domain.ConversationRoom("c1"), sink2)

	// When the first connection goes away
	rooms := registry.RemoveConnection(sink1.ID())

	// Then its rooms are reported and only the other connection is left
	req.ElementsMatch([]domain.RoomID{domain.UserRoom("alice"), domain.ConversationRoom("c1")}, rooms)
	req.Len(registry.sessions, 1)
	req.Nil(registry.Members(domain.UserRoom("alice")))
	req.Len(registry.Members(domain.ConversationRoom("c1")), 1)
	req.Empty(registry.RemoveConnection(sink1.ID()))
}
