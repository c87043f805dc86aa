package domain

import "time"

type MessageType string

const (
	MessageText  MessageType = "TEXT"
	MessageImage MessageType = "IMAGE"
	MessageVideo MessageType = "VIDEO"
	MessageFile  MessageType = "FILE"
	MessageVoice MessageType = "VOICE"
)

// Message is the already persisted chat message handed over by the
// message store once its write has committed.
type Message struct {
	ID             string         `json:"id" validate:"required"`
	ConversationID ConversationID `json:"conversationId" validate:"required"`
	SenderID       UserID         `json:"senderId" validate:"required"`
	Content        *string        `json:"content,omitempty"`
	Type           MessageType    `json:"type" validate:"required"`
	MediaURL       *string        `json:"mediaUrl,omitempty"`
	CreatedAt      time.Time      `json:"createdAt" validate:"required"`
}

// ToNotification builds the offline copy of the message, with no attempt recorded yet.
func (m Message) ToNotification() QueuedNotification {
	return QueuedNotification{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Content:        m.Content,
		Type:           m.Type,
		MediaURL:       m.MediaURL,
		CreatedAt:      m.CreatedAt.UTC().Format(time.RFC3339Nano),
		Attempts:       0,
	}
}

// QueuedNotification is a pending message waiting for its offline recipient.
// Only Attempts changes while it sits in the queue.
type QueuedNotification struct {
	ID             string         `json:"id"`
	ConversationID ConversationID `json:"conversationId"`
	SenderID       UserID         `json:"senderId"`
	Content        *string        `json:"content"`
	Type           MessageType    `json:"type"`
	MediaURL       *string        `json:"mediaUrl"`
	CreatedAt      string         `json:"createdAt"`
	Attempts       int            `json:"attempts"`
}

type QueuePage struct {
	Items   []QueuedNotification `json:"messages"`
	Total   int                  `json:"total"`
	HasMore bool                 `json:"hasMore"`
}

type QueueStatus struct {
	Pending int                 `json:"pending"`
	Oldest  *QueuedNotification `json:"oldestMessage"`
}

type OnlineStats struct {
	Count int      `json:"count"`
	Users []UserID `json:"users"`
}

// ToMessage turns a drained notification back into the message it announces.
func (n QueuedNotification) ToMessage() (Message, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, n.CreatedAt)
	if err != nil {
		return Message{}, err
	}
	return Message{
		ID:             n.ID,
		ConversationID: n.ConversationID,
		SenderID:       n.SenderID,
		Content:        n.Content,
		Type:           n.Type,
		MediaURL:       n.MediaURL,
		CreatedAt:      createdAt,
	}, nil
}
