package event

import (
	"chat-relay/domain"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEncode_WrapsPayloadUnderEventName(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	raw, err := Encode(PresenceChanged{UserID: "alice", Timestamp: at, Online: true})
	req.NoError(err)

	var frame map[string]json.RawMessage
	req.NoError(json.Unmarshal(raw, &frame))
	req.JSONEq(`"user:online"`, string(frame["event"]))
	req.JSONEq(`{"userId":"alice","timestamp":"2026-01-02T03:04:05Z"}`, string(frame["data"]))
}

func TestEncode_MessageCreatedIsFlat(t *testing.T) {
	req := require.New(t)
	content := "hi"

	raw, err := Encode(MessageCreated{Message: domain.Message{
		ID: "m1", ConversationID: "c1", SenderID: "bob", Content: &content, Type: domain.MessageText,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}})
	req.NoError(err)

	env, err := Decode(raw)
	req.NoError(err)
	req.Equal(MessageNew, env.Event)

	var msg domain.Message
	req.NoError(json.Unmarshal(env.Data, &msg))
	req.Equal("m1", msg.ID)
	req.Equal(domain.ConversationID("c1"), msg.ConversationID)
	req.Equal("hi", *msg.Content)
}

func TestPresenceChanged_Name(t *testing.T) {
	req := require.New(t)
	req.Equal(UserOnline, PresenceChanged{Online: true}.Name())
	req.Equal(UserOffline, PresenceChanged{}.Name())
}

func TestDecode_RejectsFrameWithoutName(t *testing.T) {
	req := require.New(t)

	_, err := Decode([]byte(`{"data":{"conversationId":"c1"}}`))
	req.Error(err)

	_, err = Decode([]byte(`not json`))
	req.Error(err)
}
