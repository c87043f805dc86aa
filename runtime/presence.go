package runtime

import (
	"chat-relay/domain"
	"sort"
	"sync"
)

// PresenceRegistry is the single source of truth for "is this user reachable".
// It keeps one live connection per user: the last one to connect wins.
type PresenceRegistry struct {
	mu          sync.RWMutex
	connections map[domain.UserID]domain.ConnectionID
	users       map[domain.ConnectionID]domain.UserID
}

func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{
		connections: make(map[domain.UserID]domain.ConnectionID),
		users:       make(map[domain.ConnectionID]domain.UserID),
	}
}

// MarkOnline binds the user to connID, replacing any previous connection.
func (p *PresenceRegistry) MarkOnline(userID domain.UserID, connID domain.ConnectionID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if previous, ok := p.connections[userID]; ok {
		delete(p.users, previous)
	}
	p.connections[userID] = connID
	p.users[connID] = userID
}

// MarkOffline is the unconditional form of Release, sessions use Release.
// It is a no-op for a user that is not present.
func (p *PresenceRegistry) MarkOffline(userID domain.UserID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if connID, ok := p.connections[userID]; ok {
		delete(p.users, connID)
		delete(p.connections, userID)
	}
}

// Release removes the entry only while it still points at connID.
// A connection displaced by a newer one must not evict it when it closes.
func (p *PresenceRegistry) Release(userID domain.UserID, connID domain.ConnectionID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	current, ok := p.connections[userID]
	if !ok || current != connID {
		return false
	}
	delete(p.connections, userID)
	delete(p.users, connID)
	return true
}

func (p *PresenceRegistry) IsOnline(userID domain.UserID) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.connections[userID]
	return ok
}

func (p *PresenceRegistry) ConnectionFor(userID domain.UserID) (domain.ConnectionID, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	connID, ok := p.connections[userID]
	return connID, ok
}

func (p *PresenceRegistry) OnlineCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.connections)
}

// OnlineUserIDs is sorted so callers get a stable listing.
func (p *PresenceRegistry) OnlineUserIDs() []domain.UserID {
	p.mu.RLock()
	ids := make([]domain.UserID, 0, len(p.connections))
	for userID := range p.connections {
		ids = append(ids, userID)
	}
	p.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (p *PresenceRegistry) Stats() domain.OnlineStats {
	users := p.OnlineUserIDs()
	return domain.OnlineStats{Count: len(users), Users: users}
}
