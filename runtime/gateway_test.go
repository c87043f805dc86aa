package runtime

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/observability"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	gateway    *Gateway
	presence   *PresenceRegistry
	rooms      *RoomRegistry
	router     *Router
	monitoring *observability.MonitoringManager
	verifier   *mocks.MockTokenVerifier
	membership *mocks.MockMembershipLookup
}

func newFixture(t *testing.T) *fixture {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	presence := NewPresenceRegistry()
	rooms := NewRoomRegistry()
	monitoring := observability.NewMonitoringManager(log)
	router := NewRouter(log, presence, rooms, monitoring, 100*time.Millisecond)
	verifier := mocks.NewMockTokenVerifier(ctrl)
	membership := mocks.NewMockMembershipLookup(ctrl)
	return &fixture{
		gateway:    NewGateway(log, presence, rooms, router, membership, verifier, monitoring),
		presence:   presence,
		rooms:      rooms,
		router:     router,
		monitoring: monitoring,
		verifier:   verifier,
		membership: membership,
	}
}

func (f *fixture) connect(t *testing.T, userID domain.UserID, conversations ...domain.ConversationID) (*Session, *Sink) {
	t.Helper()
	token := fmt.Sprintf("token-%s", userID)
	f.verifier.EXPECT().Verify(token).Return(domain.Identity{UserID: userID}, nil)
	f.membership.EXPECT().ConversationIDsForUser(gomock.Any(), userID).Return(conversations, nil)

	sink := newSink()
	session, err := f.gateway.Open(context.Background(), token, sink)
	require.NoError(t, err)
	return session.(*Session), sink
}

func TestGateway_Open_JoinsOwnAndConversationRooms(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// When alice connects with memberships {c1, c2}
	session, sink := f.connect(t, "alice", "c1", "c2")

	// Then alice is joined to exactly the user room and both conversations
	req.ElementsMatch([]domain.RoomID{
		domain.UserRoom("alice"),
		domain.ConversationRoom("c1"),
		domain.ConversationRoom("c2"),
	}, session.Rooms())
	req.Equal(Joined, session.State())
	req.True(f.presence.IsOnline("alice"))

	// And alice saw the online broadcast before the welcome frame
	req.Equal([]event.Name{event.UserOnline, event.Connected}, sink.Names())
	welcome := sink.Received()[1].(event.Welcome)
	req.Equal(domain.UserID("alice"), welcome.UserID)
	req.Equal(int64(1), f.monitoring.GetLatest().Connections)
}

func TestGateway_Open_BroadcastsPresenceToEveryone(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// Given bob shares no conversation with carol
	_, bobSink := f.connect(t, "bob", "c1")

	// When carol connects
	f.connect(t, "carol", "c9")

	// Then bob still hears about it
	names := bobSink.Names()
	req.Equal(event.UserOnline, names[len(names)-1])
	presence := bobSink.Received()[len(names)-1].(event.PresenceChanged)
	req.Equal(domain.UserID("carol"), presence.UserID)
	req.True(presence.Online)
}

func TestGateway_Open_Rejections(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		sink := newSink()

		session, err := f.gateway.Open(context.Background(), "", sink)

		req.ErrorIs(err, errors.ErrMissingToken)
		req.Nil(session)
		req.Empty(sink.Received())
		req.Zero(f.presence.OnlineCount())
		req.Empty(f.rooms.All())
	})

	t.Run("invalid token", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		sink := newSink()
		f.verifier.EXPECT().Verify("expired").Return(domain.Identity{}, fmt.Errorf("%w: token is expired", errors.ErrInvalidToken))

		session, err := f.gateway.Open(context.Background(), "expired", sink)

		req.ErrorIs(err, errors.ErrInvalidToken)
		req.Nil(session)
		req.Empty(sink.Received())
		req.Zero(f.presence.OnlineCount())
		req.Empty(f.rooms.All())
		req.Equal(uint64(1), f.monitoring.GetLatest().RejectedHandshakes)
	})

	t.Run("membership lookup failure", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		sink := newSink()
		_, watcher := f.connect(t, "watcher")
		before := len(watcher.Received())
		f.verifier.EXPECT().Verify("token-alice").Return(domain.Identity{UserID: "alice"}, nil)
		f.membership.EXPECT().ConversationIDsForUser(gomock.Any(), domain.UserID("alice")).Return(nil, fmt.Errorf("db down"))

		session, err := f.gateway.Open(context.Background(), "token-alice", sink)

		// Then the partial session is torn down without any presence broadcast
		req.Error(err)
		req.Nil(session)
		req.False(f.presence.IsOnline("alice"))
		req.Empty(f.rooms.RoomsOf(sink.ID()))
		req.Len(watcher.Received(), before)
	})

	t.Run("membership lookup failure keeps the earlier connection reachable", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		first, firstSink := f.connect(t, "alice", "c1")
		connID, _ := f.presence.ConnectionFor("alice")
		f.verifier.EXPECT().Verify("token-alice").Return(domain.Identity{UserID: "alice"}, nil)
		f.membership.EXPECT().ConversationIDsForUser(gomock.Any(), domain.UserID("alice")).Return(nil, fmt.Errorf("db down"))

		// When a second connection of alice fails its membership lookup
		session, err := f.gateway.Open(context.Background(), "token-alice", newSink())

		// Then the first connection still owns alice's presence and rooms
		req.Error(err)
		req.Nil(session)
		req.Equal(Joined, first.State())
		req.True(f.presence.IsOnline("alice"))
		current, ok := f.presence.ConnectionFor("alice")
		req.True(ok)
		req.Equal(connID, current)
		req.ElementsMatch([]domain.RoomID{domain.UserRoom("alice"), domain.ConversationRoom("c1")},
			f.rooms.RoomsOf(firstSink.ID()))
	})
}

func TestSession_Close_ReleasesPresenceAndBroadcastsOffline(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice, aliceSink := f.connect(t, "alice", "c1")
	_, bobSink := f.connect(t, "bob", "c1")

	// When alice disconnects, twice
	alice.Close(context.Background())
	alice.Close(context.Background())

	// Then alice is offline, out of every room, and bob heard it once
	req.False(f.presence.IsOnline("alice"))
	req.Empty(f.rooms.RoomsOf(aliceSink.ID()))
	req.Equal(Closed, alice.State())
	offline := 0
	for _, e := range bobSink.Received() {
		if e.Name() == event.UserOffline {
			offline++
		}
	}
	req.Equal(1, offline)

	// And a closed session refuses further work
	req.ErrorIs(alice.Join(context.Background(), "c1"), errors.ErrSessionClosed)
}

func TestSession_Close_DisplacedConnectionKeepsNewerOnline(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// Given alice opened a second connection
	first, _ := f.connect(t, "alice")
	second, _ := f.connect(t, "alice")
	_, bobSink := f.connect(t, "bob")

	// When the first one closes late
	first.Close(context.Background())

	// Then alice stays reachable through the second and nobody saw alice go offline
	connID, ok := f.presence.ConnectionFor("alice")
	req.True(ok)
	req.Equal(second.ID(), connID)
	req.NotContains(bobSink.Names(), event.UserOffline)
}
