//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"chat-relay/domain/event"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one live connection seen from the router.
// Consume must keep the order in which events are handed to it.
type EventSink interface {
	ID() domain.ConnectionID
	Consume(ctx context.Context, e event.Event) error
}

type IPresenceRegistry interface {
	MarkOnline(userID domain.UserID, connID domain.ConnectionID)
	MarkOffline(userID domain.UserID)
	Release(userID domain.UserID, connID domain.ConnectionID) bool
	IsOnline(userID domain.UserID) bool
	ConnectionFor(userID domain.UserID) (domain.ConnectionID, bool)
	OnlineCount() int
	OnlineUserIDs() []domain.UserID
	Stats() domain.OnlineStats
}

type IRoomRegistry interface {
	Join(roomID domain.RoomID, sink EventSink)
	Leave(roomID domain.RoomID, connID domain.ConnectionID)
	RemoveConnection(connID domain.ConnectionID) []domain.RoomID
	Members(roomID domain.RoomID) []EventSink
	RoomsOf(connID domain.ConnectionID) []domain.RoomID
	All() []EventSink
}

type IRouter interface {
	DeliverToUser(ctx context.Context, userID domain.UserID, e event.Event) bool
	DeliverToConversation(ctx context.Context, conversationID domain.ConversationID, e event.Event)
	DeliverToConversationExceptSender(ctx context.Context, conversationID domain.ConversationID, senderID domain.UserID, e event.Event)
	Broadcast(ctx context.Context, e event.Event)
}

// ISession is an authenticated connection as seen by the transport.
type ISession interface {
	ID() domain.ConnectionID
	UserID() domain.UserID
	Handle(ctx context.Context, raw []byte)
	Close(ctx context.Context)
}

type IGateway interface {
	Open(ctx context.Context, token string, sink EventSink) (ISession, error)
}

type IOfflineQueue interface {
	Enqueue(ctx context.Context, userID domain.UserID, n domain.QueuedNotification) error
	EnqueueMany(ctx context.Context, userIDs []domain.UserID, n domain.QueuedNotification) error
	List(ctx context.Context, userID domain.UserID, limit int) (domain.QueuePage, error)
	ClearDelivered(ctx context.Context, userID domain.UserID, messageIDs []string) error
	ClearAll(ctx context.Context, userID domain.UserID) error
	Status(ctx context.Context, userID domain.UserID) (domain.QueueStatus, error)
	IncrementAttempts(ctx context.Context, userID domain.UserID, messageID string) error
}

// QueueBackend is a durable ordered list per key whose whole content expires
// together. Indexes follow the LRANGE convention: stop is inclusive, -1 is the tail.
// A missing or expired key reads as an empty list.
type QueueBackend interface {
	Append(ctx context.Context, key string, values [][]byte, ttl time.Duration) error
	Range(ctx context.Context, key string, start, stop int64) ([][]byte, error)
	Len(ctx context.Context, key string) (int64, error)
	// TrimFront deletes the first len(head) values only if they still equal head.
	// It reports false, without error, when the list changed in between.
	TrimFront(ctx context.Context, key string, head [][]byte, ttl time.Duration) (bool, error)
	Rewrite(ctx context.Context, key string, fn func(values [][]byte) ([][]byte, error), ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

type MembershipLookup interface {
	ConversationIDsForUser(ctx context.Context, userID domain.UserID) ([]domain.ConversationID, error)
	MemberIDs(ctx context.Context, conversationID domain.ConversationID) ([]domain.UserID, error)
	IsMember(ctx context.Context, conversationID domain.ConversationID, userID domain.UserID) (bool, error)
}

type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

type INotificationService interface {
	MessageCreated(ctx context.Context, msg domain.Message) error
	MessageUpdated(ctx context.Context, msg domain.Message)
	MessageDeleted(ctx context.Context, conversationID domain.ConversationID, messageID string)
	ReactionChanged(ctx context.Context, conversationID domain.ConversationID, reaction event.ReactionChanged)
	MessageRead(ctx context.Context, senderID domain.UserID, receipt event.ReadReceipt)
	MessageDelivered(ctx context.Context, senderID domain.UserID, receipt event.DeliveryReceipt)
	NotifyUser(ctx context.Context, userID domain.UserID, msg domain.Message) error
	IsOnline(userID domain.UserID) bool
	OnlineStats() domain.OnlineStats
}

type IQueueService interface {
	Pending(ctx context.Context, userID domain.UserID, limit int) (domain.QueuePage, error)
	Acknowledge(ctx context.Context, userID domain.UserID, messageIDs []string) error
	Clear(ctx context.Context, userID domain.UserID) error
	Status(ctx context.Context, userID domain.UserID) (domain.QueueStatus, error)
	RecordAttempt(ctx context.Context, userID domain.UserID, messageID string) error
}
