package event

import (
	"encoding/json"
	"fmt"
)

// CloseUnauthorized is the WebSocket close code sent when the handshake credential is refused.
const CloseUnauthorized = 4401

// Envelope is the frame exchanged over the socket: {"event": "...", "data": {...}}.
type Envelope struct {
	Event Name            `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func Encode(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", e.Name(), err)
	}
	return json.Marshal(Envelope{Event: e.Name(), Data: data})
}

func Decode(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, err
	}
	if env.Event == "" {
		return Envelope{}, fmt.Errorf("frame without event name")
	}
	return env, nil
}

// NewEnvelope is used by clients to send a command to the server.
func NewEnvelope(name Name, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: name, Data: data})
}
