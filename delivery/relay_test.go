package delivery

import (
	"chat-relay/auth"
	"chat-relay/domain"
	"chat-relay/infrastructure/api"
	"chat-relay/infrastructure/storage"
	"chat-relay/infrastructure/ws"
	"chat-relay/observability"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/services"
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

// staticMembership serves a fixed conversation table.
type staticMembership map[domain.ConversationID][]domain.UserID

func (m staticMembership) ConversationIDsForUser(_ context.Context, userID domain.UserID) ([]domain.ConversationID, error) {
	var ids []domain.ConversationID
	for conversationID, members := range m {
		for _, member := range members {
			if member == userID {
				ids = append(ids, conversationID)
			}
		}
	}
	return ids, nil
}

func (m staticMembership) MemberIDs(_ context.Context, conversationID domain.ConversationID) ([]domain.UserID, error) {
	return m[conversationID], nil
}

func (m staticMembership) IsMember(ctx context.Context, conversationID domain.ConversationID, userID domain.UserID) (bool, error) {
	for _, member := range m[conversationID] {
		if member == userID {
			return true, nil
		}
	}
	return false, nil
}

// testRelay is a complete relay served over httptest.
type testRelay struct {
	url           string
	tokens        *auth.TokenManager
	notifications *services.NotificationService
	queue         *repositories.OfflineQueue
	presence      *runtime.PresenceRegistry
}

func newTestRelay(t *testing.T, membership staticMembership) *testRelay {
	gin.SetMode(gin.TestMode)
	log := testLogger()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)

	queue := repositories.NewOfflineQueue(log, storage.NewBadgerListStore(db, log), time.Hour)
	monitoring := observability.NewMonitoringManager(log)
	presence := runtime.NewPresenceRegistry()
	rooms := runtime.NewRoomRegistry()
	router := runtime.NewRouter(log, presence, rooms, monitoring, time.Second)
	tokens := auth.NewTokenManager("test-secret", "chat-relay", time.Hour)
	gateway := runtime.NewGateway(log, presence, rooms, router, membership, tokens, monitoring)
	notifications := services.NewNotificationService(log, router, presence, membership, queue, monitoring)

	server := api.NewServer(log, notifications, services.NewQueueService(queue), monitoring, tokens,
		ws.NewHandler(log, gateway, ws.DefaultOptions()), "")
	srv := httptest.NewServer(server.Routes())
	t.Cleanup(func() {
		srv.Close()
		_ = db.Close()
	})

	return &testRelay{
		url:           srv.URL,
		tokens:        tokens,
		notifications: notifications,
		queue:         queue,
		presence:      presence,
	}
}

func (r *testRelay) token(t *testing.T, userID domain.UserID) string {
	token, err := r.tokens.Generate(userID, nil)
	require.NoError(t, err)
	return token
}

// coordinator builds a coordinator for userID whose messages land on the returned channel.
func (r *testRelay) coordinator(t *testing.T, userID domain.UserID, cfg Config) (*Coordinator, chan domain.Message) {
	cfg.BaseURL = r.url
	if cfg.Token == "" {
		cfg.Token = r.token(t, userID)
	}
	c, err := New(testLogger(), cfg)
	require.NoError(t, err)
	received := make(chan domain.Message, 16)
	c.OnMessage(func(_ context.Context, msg domain.Message) error {
		received <- msg
		return nil
	})
	return c, received
}

// start runs the coordinator until the test ends and waits for its first connection.
func start(t *testing.T, c *Coordinator) {
	connected := make(chan struct{}, 1)
	c.OnStateChange(func(s State) {
		if s == StateConnected {
			select {
			case connected <- struct{}{}:
			default:
			}
		}
	})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = c.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	select {
	case <-connected:
	case <-time.After(5 * time.Second):
		t.Fatal("coordinator never connected")
	}
}

func textMessage(id string, conversationID domain.ConversationID, sender domain.UserID) domain.Message {
	content := "hello " + id
	return domain.Message{
		ID:             id,
		ConversationID: conversationID,
		SenderID:       sender,
		Content:        &content,
		Type:           domain.MessageText,
		CreatedAt:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}
