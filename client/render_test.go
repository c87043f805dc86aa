package main

import (
	"bytes"
	"chat-relay/domain"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"
)

func init() {
	color.Disable()
}

func TestRenderStatus_EmptyQueue(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	renderStatus(&out, domain.QueueStatus{})

	req.Contains(out.String(), "PENDING")
	req.Contains(out.String(), "0")
	req.Contains(out.String(), "-")
}

func TestRenderStatus_ShowsOldestEntry(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	renderStatus(&out, domain.QueueStatus{
		Pending: 4,
		Oldest: &domain.QueuedNotification{
			ID:             "m1",
			ConversationID: "c1",
			SenderID:       "alice",
			CreatedAt:      "2026-01-02T10:00:00Z",
			Attempts:       2,
		},
	})

	req.Contains(out.String(), "2026-01-02T10:00:00Z")
	req.Contains(out.String(), "alice")
	req.Contains(out.String(), "c1")
}

func TestRenderPage_ReportsTruncation(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer

	renderPage(&out, domain.QueuePage{
		Items: []domain.QueuedNotification{
			{ID: "m1", ConversationID: "c1", SenderID: "alice", Type: domain.MessageText},
			{ID: "m2", ConversationID: "c1", SenderID: "bob", Type: domain.MessageImage},
		},
		Total:   5,
		HasMore: true,
	})

	req.Contains(out.String(), "m1")
	req.Contains(out.String(), "IMAGE")
	req.Contains(out.String(), "2 of 5 shown")
}

func TestPrintMessage_FallsBackToMedia(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	content := "hello"
	media := "https://cdn.local/cat.png"

	printMessage(&out, domain.Message{ID: "m1", ConversationID: "c1", SenderID: "alice",
		Type: domain.MessageText, Content: &content, CreatedAt: time.Now()})
	printMessage(&out, domain.Message{ID: "m2", ConversationID: "c1", SenderID: "bob",
		Type: domain.MessageImage, MediaURL: &media, CreatedAt: time.Now()})

	req.Contains(out.String(), "#c1")
	req.Contains(out.String(), "hello")
	req.Contains(out.String(), "[IMAGE] https://cdn.local/cat.png")
}
