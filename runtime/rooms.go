package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"sync"
)

type Set map[domain.ConnectionID]struct{}

// RoomRegistry keeps the process-local room memberships of live connections.
type RoomRegistry struct {
	mu          sync.RWMutex
	sessions    map[domain.ConnectionID]contract.EventSink // map connection -> Sink
	roomMembers map[domain.RoomID]Set                      // map room to connections
	joined      map[domain.ConnectionID]map[domain.RoomID]struct{}
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{
		sessions:    make(map[domain.ConnectionID]contract.EventSink),
		roomMembers: make(map[domain.RoomID]Set),
		joined:      make(map[domain.ConnectionID]map[domain.RoomID]struct{}),
	}
}

// Join registers the connection in the room. Joining twice is harmless.
// If the room does not yet exist in the registry, it is initialized on the fly.
func (r *RoomRegistry) Join(roomID domain.RoomID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	connID := sink.ID()
	r.sessions[connID] = sink

	if _, ok := r.roomMembers[roomID]; !ok {
		r.roomMembers[roomID] = make(Set)
	}
	r.roomMembers[roomID][connID] = struct{}{}

	if _, ok := r.joined[connID]; !ok {
		r.joined[connID] = make(map[domain.RoomID]struct{})
	}
	r.joined[connID][roomID] = struct{}{}
}

// Leave removes the connection from a single room. No empty sets are left behind.
func (r *RoomRegistry) Leave(roomID domain.RoomID, connID domain.ConnectionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leave(roomID, connID)
}

func (r *RoomRegistry) leave(roomID domain.RoomID, connID domain.ConnectionID) {
	if members, ok := r.roomMembers[roomID]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(r.roomMembers, roomID)
		}
	}
	if rooms, ok := r.joined[connID]; ok {
		delete(rooms, roomID)
	}
}

// RemoveConnection drops every membership of the connection and forgets its sink.
// It returns the rooms the connection was in.
func (r *RoomRegistry) RemoveConnection(connID domain.ConnectionID) []domain.RoomID {
	r.mu.Lock()
	defer r.mu.Unlock()

	rooms := make([]domain.RoomID, 0, len(r.joined[connID]))
	for roomID := range r.joined[connID] {
		rooms = append(rooms, roomID)
	}
	for _, roomID := range rooms {
		r.leave(roomID, connID)
	}
	delete(r.joined, connID)
	delete(r.sessions, connID)
	return rooms
}

// Members resolves the sinks currently joined to a room.
// Returns nil if the room doesn't exist or has no members.
func (r *RoomRegistry) Members(roomID domain.RoomID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.roomMembers[roomID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for connID := range members {
		if sink, exists := r.sessions[connID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

func (r *RoomRegistry) RoomsOf(connID domain.ConnectionID) []domain.RoomID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]domain.RoomID, 0, len(r.joined[connID]))
	for roomID := range r.joined[connID] {
		rooms = append(rooms, roomID)
	}
	return rooms
}

// All returns every connection that joined at least one room.
func (r *RoomRegistry) All() []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sinks := make([]contract.EventSink, 0, len(r.sessions))
	for _, sink := range r.sessions {
		sinks = append(sinks, sink)
	}
	return sinks
}
