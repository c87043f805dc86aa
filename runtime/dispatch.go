package runtime

import (
	"chat-relay/domain/event"
	"chat-relay/errors"
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type handlerFunc func(ctx context.Context, s *Session, data json.RawMessage) error

// Dispatcher maps client event names to their handlers. Payloads are decoded
// into typed commands and validated before any handler runs.
type Dispatcher struct {
	validate *validator.Validate
	handlers map[event.Name]handlerFunc
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{validate: validator.New()}
	d.handlers = map[event.Name]handlerFunc{
		event.TypingStart: on(d, func(ctx context.Context, s *Session, cmd event.StartTyping) error {
			return s.TypingStart(ctx, cmd.ConversationID)
		}),
		event.TypingStop: on(d, func(ctx context.Context, s *Session, cmd event.StopTyping) error {
			return s.TypingStop(ctx, cmd.ConversationID)
		}),
		event.ConversationJoin: on(d, func(ctx context.Context, s *Session, cmd event.JoinConversation) error {
			return s.Join(ctx, cmd.ConversationID)
		}),
		event.ConversationLeave: on(d, func(_ context.Context, s *Session, cmd event.LeaveConversation) error {
			s.Leave(cmd.ConversationID)
			return nil
		}),
	}
	return d
}

func on[C event.Command](d *Dispatcher, fn func(context.Context, *Session, C) error) handlerFunc {
	return func(ctx context.Context, s *Session, data json.RawMessage) error {
		var cmd C
		if err := d.decode(data, &cmd); err != nil {
			return err
		}
		return fn(ctx, s, cmd)
	}
}

func (d *Dispatcher) decode(data json.RawMessage, cmd any) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: missing data", errors.ErrInvalidPayload)
	}
	if err := json.Unmarshal(data, cmd); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrInvalidPayload, err)
	}
	if err := d.validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrInvalidPayload, err)
	}
	return nil
}

// Dispatch decodes a raw frame and runs its handler. The event name is
// returned even on failure so the error can be attributed.
func (d *Dispatcher) Dispatch(ctx context.Context, s *Session, raw []byte) (event.Name, error) {
	env, err := event.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errors.ErrInvalidPayload, err)
	}
	handler, ok := d.handlers[env.Event]
	if !ok {
		return env.Event, fmt.Errorf("%w: %s", errors.ErrUnknownEvent, env.Event)
	}
	return env.Event, handler(ctx, s, env.Data)
}
