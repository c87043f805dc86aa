package runtime

import (
	"chat-relay/domain"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresenceRegistry_MarkOnline_LastConnectionWins(t *testing.T) {
	req := require.New(t)
	presence := NewPresenceRegistry()

	// Given alice connected twice
	presence.MarkOnline("alice", "conn-1")
	presence.MarkOnline("alice", "conn-2")

	// Then only the latest connection is registered
	connID, ok := presence.ConnectionFor("alice")
	req.True(ok)
	req.Equal(domain.ConnectionID("conn-2"), connID)
	req.Equal(1, presence.OnlineCount())
	req.Len(presence.users, 1)
}

func TestPresenceRegistry_MarkOffline_Idempotent(t *testing.T) {
	req := require.New(t)
	presence := NewPresenceRegistry()

	// Given nobody is connected, marking offline is a no-op
	presence.MarkOffline("ghost")
	req.Zero(presence.OnlineCount())

	presence.MarkOnline("alice", "conn-1")
	presence.MarkOffline("alice")
	presence.MarkOffline("alice")

	req.False(presence.IsOnline("alice"))
	req.Empty(presence.users)
}

func TestPresenceRegistry_Release_KeepsNewerConnection(t *testing.T) {
	req := require.New(t)
	presence := NewPresenceRegistry()

	// Given alice reconnected before the first connection was torn down
	presence.MarkOnline("alice", "conn-1")
	presence.MarkOnline("alice", "conn-2")

	// When the displaced connection closes
	released := presence.Release("alice", "conn-1")

	// Then alice stays online on the newer one
	req.False(released)
	req.True(presence.IsOnline("alice"))

	// And releasing the current one removes alice
	req.True(presence.Release("alice", "conn-2"))
	req.False(presence.IsOnline("alice"))
}

func TestPresenceRegistry_Stats(t *testing.T) {
	req := require.New(t)
	presence := NewPresenceRegistry()
	presence.MarkOnline("bob", "c-b")
	presence.MarkOnline("alice", "c-a")

	stats := presence.Stats()

	req.Equal(2, stats.Count)
	req.Equal([]domain.UserID{"alice", "bob"}, stats.Users)
}

// At most one entry per user survives any interleaving of connects and disconnects.
func TestPresenceRegistry_SinglePresence_ConcurrentChurn(t *testing.T) {
	req := require.New(t)
	presence := NewPresenceRegistry()
	users := []domain.UserID{"alice", "bob", "carol"}

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			for i := 0; i < 500; i++ {
				user := users[rnd.Intn(len(users))]
				connID := domain.ConnectionID(fmt.Sprintf("%d-%d", seed, i))
				switch rnd.Intn(3) {
				case 0:
					presence.MarkOnline(user, connID)
				case 1:
					presence.MarkOffline(user)
				default:
					if current, ok := presence.ConnectionFor(user); ok {
						presence.Release(user, current)
					}
				}
			}
		}(int64(worker))
	}
	wg.Wait()

	// Then both indexes agree and hold one entry per user at most
	req.LessOrEqual(presence.OnlineCount(), len(users))
	req.Len(presence.users, len(presence.connections))
	for userID, connID := range presence.connections {
		req.Equal(userID, presence.users[connID])
	}
}
