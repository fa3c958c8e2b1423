// Package chat provides the client-side chat domain logic: session state,
// presence, rooms, typing debounce, and the inbound event router.
package chat

import "github.com/omochice/ws-chat-client/pkg/protocol"

// Session holds the locally known connection identity. The username is fixed
// once the session is created; only the current room changes, and only upon
// server confirmation.
type Session struct {
	username    string
	userID      string
	currentRoom string
	established bool
}

// NewSession creates a session for username, starting in the Global room.
func NewSession(username string) *Session {
	return &Session{
		username:    username,
		currentRoom: protocol.GlobalRoom,
	}
}

// Username returns the local username.
func (s *Session) Username() string { return s.username }

// CurrentRoom returns the room the session is currently in.
func (s *Session) CurrentRoom() string { return s.currentRoom }

// Established reports whether the server has confirmed the connection.
func (s *Session) Established() bool { return s.established }

// UserID returns the server-assigned user id, if any.
func (s *Session) UserID() string { return s.userID }

// establish records the server's connection confirmation.
func (s *Session) establish(userID string) {
	s.userID = userID
	s.established = true
}

// switchRoom moves the session to room. It reports false when room is
// already current, making confirmed switches idempotent.
func (s *Session) switchRoom(room string) bool {
	if room == s.currentRoom {
		return false
	}
	s.currentRoom = room
	return true
}
