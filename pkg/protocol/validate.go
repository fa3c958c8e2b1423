package protocol

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Validation limits enforced client-side before sending, counted in
// characters rather than bytes. The server applies the same rules and
// remains authoritative.
const (
	MaxMessageLength  = 1000
	MaxUsernameLength = 20
	MaxRoomNameLength = 20
)

// namePattern matches the characters allowed in usernames and room names.
var namePattern = regexp.MustCompile(`^[a-zA-ZåäöÅÄÖ0-9_ -]+$`)

var (
	ErrEmptyName        = errors.New("name must not be empty")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidCharacter = errors.New("name contains invalid characters")
	ErrMessageTooLong   = errors.New("message is too long")
	ErrEmptyMessage     = errors.New("message must not be empty")
)

// ValidateUsername checks that username is acceptable to send in a
// connection request.
func ValidateUsername(username string) error {
	return validateName("username", username, MaxUsernameLength)
}

// ValidateRoomName checks that roomName is acceptable to send in a room
// create or switch request.
func ValidateRoomName(roomName string) error {
	return validateName("room name", roomName, MaxRoomNameLength)
}

func validateName(kind, name string, max int) error {
	if name == "" {
		return fmt.Errorf("%s: %w", kind, ErrEmptyName)
	}
	if utf8.RuneCountInString(name) > max {
		return fmt.Errorf("%s %q: %w", kind, name, ErrNameTooLong)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%s %q: %w", kind, name, ErrInvalidCharacter)
	}
	return nil
}

// ValidateMessage checks that a chat message body is acceptable to send.
func ValidateMessage(text string) error {
	if text == "" {
		return ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}
