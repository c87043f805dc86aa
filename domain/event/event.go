package event

import (
	"chat-relay/domain"
	"time"
)

// Name is the wire name of an event, in both directions.
type Name string

const (
	// Server to client
	Connected        Name = "connected"
	UserOnline       Name = "user:online"
	UserOffline      Name = "user:offline"
	UserTyping       Name = "user:typing"
	MessageNew       Name = "message:new"
	MessageUpdate    Name = "message:updated"
	MessageDelete    Name = "message:deleted"
	MessageRead      Name = "message:read"
	MessageDelivered Name = "message:delivered"
	MessageReaction  Name = "message:reaction"
	Failure          Name = "error"

	// Client to server
	TypingStart       Name = "typing:start"
	TypingStop        Name = "typing:stop"
	ConversationJoin  Name = "conversation:join"
	ConversationLeave Name = "conversation:leave"
)

// Event is anything the server writes to a connection.
type Event interface {
	Name() Name
}

// DomainEvent is the closed set of chat state changes carried by the router.
// The unexported marker keeps the set sealed to this package.
type DomainEvent interface {
	Event
	domainEvent()
}

type MessageCreated struct {
	domain.Message
}

func (MessageCreated) Name() Name   { return MessageNew }
func (MessageCreated) domainEvent() {}

type MessageUpdated struct {
	domain.Message
}

func (MessageUpdated) Name() Name   { return MessageUpdate }
func (MessageUpdated) domainEvent() {}

type MessageDeleted struct {
	MessageID string `json:"messageId"`
}

func (MessageDeleted) Name() Name   { return MessageDelete }
func (MessageDeleted) domainEvent() {}

type ReactionAction string

const (
	ReactionAdded   ReactionAction = "added"
	ReactionRemoved ReactionAction = "removed"
)

type ReactionChanged struct {
	Type       ReactionAction `json:"type"`
	MessageID  string         `json:"messageId"`
	ReactionID string         `json:"reactionId,omitempty"`
	Emoji      string         `json:"emoji"`
	UserID     domain.UserID  `json:"userId"`
	CreatedAt  *time.Time     `json:"createdAt,omitempty"`
}

func (ReactionChanged) Name() Name   { return MessageReaction }
func (ReactionChanged) domainEvent() {}

type ReadReceipt struct {
	MessageID string    `json:"messageId"`
	ReadAt    time.Time `json:"readAt"`
}

func (ReadReceipt) Name() Name   { return MessageRead }
func (ReadReceipt) domainEvent() {}

type DeliveryReceipt struct {
	MessageID   string    `json:"messageId"`
	DeliveredAt time.Time `json:"deliveredAt"`
}

func (DeliveryReceipt) Name() Name   { return MessageDelivered }
func (DeliveryReceipt) domainEvent() {}

type TypingChanged struct {
	UserID         domain.UserID         `json:"userId"`
	ConversationID domain.ConversationID `json:"conversationId"`
	IsTyping       bool                  `json:"isTyping"`
}

func (TypingChanged) Name() Name   { return UserTyping }
func (TypingChanged) domainEvent() {}

// Session level frames, never routed by conversation.

type Welcome struct {
	Message string        `json:"message"`
	UserID  domain.UserID `json:"userId"`
}

func (Welcome) Name() Name { return Connected }

type PresenceChanged struct {
	UserID    domain.UserID `json:"userId"`
	Timestamp time.Time     `json:"timestamp"`
	Online    bool          `json:"-"`
}

func (p PresenceChanged) Name() Name {
	if p.Online {
		return UserOnline
	}
	return UserOffline
}

// Error reports a rejected client event back to its sender.
type Error struct {
	Event   Name   `json:"event"`
	Message string `json:"message"`
}

func (Error) Name() Name { return Failure }
