package domain

import "strings"

type UserID string

type ConversationID string

type ConnectionID string

// RoomID addresses a fan-out group. Rooms are either private to a user
// (user:<id>) or shared by the members of a conversation (conversation:<id>).
type RoomID string

const (
	userRoomPrefix         = "user:"
	conversationRoomPrefix = "conversation:"
)

func UserRoom(userID UserID) RoomID {
	return RoomID(userRoomPrefix + string(userID))
}

func ConversationRoom(conversationID ConversationID) RoomID {
	return RoomID(conversationRoomPrefix + string(conversationID))
}

// IsConversation reports whether the room belongs to a conversation
// and returns the conversation it addresses.
func (r RoomID) IsConversation() (ConversationID, bool) {
	id, ok := strings.CutPrefix(string(r), conversationRoomPrefix)
	return ConversationID(id), ok && id != ""
}

// IsUser reports whether the room is a private user room.
func (r RoomID) IsUser() (UserID, bool) {
	id, ok := strings.CutPrefix(string(r), userRoomPrefix)
	return UserID(id), ok && id != ""
}

// Identity is what a verified credential tells us about the caller.
type Identity struct {
	UserID UserID
	Roles  []string
}
