package event

import "chat-relay/domain"

// Command is a client to server event once its payload has been validated.
type Command interface {
	Name() Name
	Conversation() domain.ConversationID
}

type ConversationRef struct {
	ConversationID domain.ConversationID `json:"conversationId" validate:"required,max=128"`
}

func (c ConversationRef) Conversation() domain.ConversationID { return c.ConversationID }

type StartTyping struct{ ConversationRef }

func (StartTyping) Name() Name { return TypingStart }

type StopTyping struct{ ConversationRef }

func (StopTyping) Name() Name { return TypingStop }

type JoinConversation struct{ ConversationRef }

func (JoinConversation) Name() Name { return ConversationJoin }

type LeaveConversation struct{ ConversationRef }

func (LeaveConversation) Name() Name { return ConversationLeave }
