package domain

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToNotification(t *testing.T) {
	req := require.New(t)
	createdAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.FixedZone("CET", 3600))

	// Given a persisted text message
	msg := Message{
		ID:             "m1",
		ConversationID: "c1",
		SenderID:       "bob",
		Content:        lo.ToPtr("hello"),
		Type:           MessageText,
		CreatedAt:      createdAt,
	}

	// When it is turned into an offline notification
	n := msg.ToNotification()

	// Then the payload is copied and no attempt has been made yet
	req.Equal("m1", n.ID)
	req.Equal(ConversationID("c1"), n.ConversationID)
	req.Equal(UserID("bob"), n.SenderID)
	req.Equal("hello", *n.Content)
	req.Nil(n.MediaURL)
	req.Equal("2026-03-14T08:26:53Z", n.CreatedAt)
	req.Zero(n.Attempts)
}

func TestQueuedNotification_ToMessage(t *testing.T) {
	req := require.New(t)

	n := QueuedNotification{ID: "m1", ConversationID: "c1", SenderID: "bob", Type: MessageImage,
		MediaURL: lo.ToPtr("https://cdn/x.png"), CreatedAt: "2026-03-14T08:26:53Z", Attempts: 2}

	msg, err := n.ToMessage()
	req.NoError(err)
	req.Equal(time.Date(2026, 3, 14, 8, 26, 53, 0, time.UTC), msg.CreatedAt)
	req.Equal("https://cdn/x.png", *msg.MediaURL)

	// An unparsable timestamp is reported
	n.CreatedAt = "yesterday"
	_, err = n.ToMessage()
	req.Error(err)
}
