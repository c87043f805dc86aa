package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/observability"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRouter_DeliverToUser_ReportsReachability(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	_, aliceSink := f.connect(t, "alice")

	req.True(f.router.DeliverToUser(ctx, "alice", event.ReadReceipt{MessageID: "m1"}))
	req.Equal(event.ReadReceipt{MessageID: "m1"}, lastEvent(aliceSink))

	// An offline user is reported unreachable and nothing is sent
	req.False(f.router.DeliverToUser(ctx, "bob", event.ReadReceipt{MessageID: "m1"}))
}

func TestRouter_DeliverToConversationExceptSender(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	_, aliceSink := f.connect(t, "alice", "c")
	_, bobSink := f.connect(t, "bob", "c")
	aliceBefore := len(aliceSink.Received())

	f.router.DeliverToConversationExceptSender(ctx, "c", "alice", event.MessageDeleted{MessageID: "m1"})

	req.Len(aliceSink.Received(), aliceBefore)
	req.Equal(event.MessageDeleted{MessageID: "m1"}, lastEvent(bobSink))
}

func TestRouter_KeepsInvocationOrderPerConnection(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	_, sink := f.connect(t, "alice", "c")
	before := len(sink.Received())

	for _, id := range []string{"m1", "m2", "m3", "m4"} {
		f.router.DeliverToConversation(ctx, "c", event.MessageDeleted{MessageID: id})
	}

	var ids []string
	for _, e := range sink.Received()[before:] {
		ids = append(ids, e.(event.MessageDeleted).MessageID)
	}
	req.Equal([]string{"m1", "m2", "m3", "m4"}, ids)
}

func TestRouter_SinkFailureIsCountedNotRetried(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	monitoring := observability.NewMonitoringManager(log)
	rooms := mocks.NewMockIRoomRegistry(ctrl)
	presence := NewPresenceRegistry()
	router := NewRouter(log, presence, rooms, monitoring, 20*time.Millisecond)

	slow := mocks.NewMockEventSink(ctrl)
	full := mocks.NewMockEventSink(ctrl)
	healthy := mocks.NewMockEventSink(ctrl)
	slow.EXPECT().ID().Return(domain.ConnectionID("slow")).AnyTimes()
	full.EXPECT().ID().Return(domain.ConnectionID("full")).AnyTimes()
	healthy.EXPECT().ID().Return(domain.ConnectionID("healthy")).AnyTimes()

	rooms.EXPECT().Members(domain.ConversationRoom("c")).
		Return([]contract.EventSink{slow, full, healthy}).Times(1)

	// Given a sink that blocks past the timeout and one whose buffer is full
	slow.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e event.Event) error {
			<-ctx.Done()     // Waiting for timeout to trigger cancellation
			return ctx.Err() // Sending back "context deadline exceeded"
		}).Times(1)
	full.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(errors.ErrSendQueueFull).Times(1)
	healthy.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// When an event is fanned out
	router.DeliverToConversation(context.Background(), "c", event.MessageDeleted{MessageID: "m1"})

	// Then each sink was tried exactly once and failures were counted
	stats := monitoring.GetLatest()
	req.Equal(uint64(2), stats.Dropped)
	req.Equal(uint64(1), stats.Delivered)
}
