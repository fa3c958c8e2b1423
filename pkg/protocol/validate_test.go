package protocol_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/omochice/ws-chat-client/pkg/protocol"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"simple", "alice", nil},
		{"with separators", "alice_b-c 1", nil},
		{"nordic characters", "Åsa Öberg", nil},
		{"empty", "", protocol.ErrEmptyName},
		{"too long", strings.Repeat("a", protocol.MaxUsernameLength+1), protocol.ErrNameTooLong},
		{"at limit", strings.Repeat("a", protocol.MaxUsernameLength), nil},
		{"multibyte at limit", strings.Repeat("å", protocol.MaxUsernameLength), nil},
		{"multibyte too long", strings.Repeat("å", protocol.MaxUsernameLength+1), protocol.ErrNameTooLong},
		{"invalid character", "alice!", protocol.ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := protocol.ValidateUsername(tt.username)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateUsername(%q) = %v, want %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRoomName(t *testing.T) {
	if err := protocol.ValidateRoomName("Lobby"); err != nil {
		t.Errorf("ValidateRoomName(Lobby) = %v, want nil", err)
	}
	if err := protocol.ValidateRoomName("Lob#by"); !errors.Is(err, protocol.ErrInvalidCharacter) {
		t.Errorf("ValidateRoomName(Lob#by) = %v, want ErrInvalidCharacter", err)
	}
	long := strings.Repeat("r", protocol.MaxRoomNameLength+1)
	if err := protocol.ValidateRoomName(long); !errors.Is(err, protocol.ErrNameTooLong) {
		t.Errorf("ValidateRoomName(long) = %v, want ErrNameTooLong", err)
	}
}

func TestValidateMessage(t *testing.T) {
	if err := protocol.ValidateMessage("hello"); err != nil {
		t.Errorf("ValidateMessage(hello) = %v, want nil", err)
	}
	if err := protocol.ValidateMessage(""); !errors.Is(err, protocol.ErrEmptyMessage) {
		t.Errorf("ValidateMessage(empty) = %v, want ErrEmptyMessage", err)
	}
	long := strings.Repeat("m", protocol.MaxMessageLength+1)
	if err := protocol.ValidateMessage(long); !errors.Is(err, protocol.ErrMessageTooLong) {
		t.Errorf("ValidateMessage(long) = %v, want ErrMessageTooLong", err)
	}
	multibyte := strings.Repeat("ö", protocol.MaxMessageLength)
	if err := protocol.ValidateMessage(multibyte); err != nil {
		t.Errorf("ValidateMessage(multibyte at limit) = %v, want nil", err)
	}
}
