package chat

import "github.com/omochice/ws-chat-client/pkg/protocol"

// Ownership tags a rendered message as the local user's own or another
// user's.
type Ownership string

const (
	OwnershipOwn   Ownership = "own"
	OwnershipOther Ownership = "other"
)

// Presence statuses tracked for roster members.
const (
	StatusOnline = "online"
	StatusTyping = "typing"
)

// UI is the callback surface the engine drives. Implementations render to a
// terminal, a TUI, or tests; the engine guarantees calls never desynchronize
// from server-authoritative state.
type UI interface {
	// AddMessage appends a message to the visible transcript.
	AddMessage(text string, ownership Ownership, author string)

	// AddMember adds a user to the online member list.
	AddMember(username, status string)

	// UpdateMemberStatus changes the displayed status of a listed member.
	UpdateMemberStatus(username, status string)

	// RemoveMember removes a user from the online member list.
	RemoveMember(username string)

	// UpdateOnlineCount refreshes the displayed member count.
	UpdateOnlineCount()

	// AddSelfAsOnline marks the local user present in the member list. The
	// engine calls it exactly once at the start of every full roster
	// replace, before the AddMember calls for that payload; implementations
	// that keep their own member state must reset it here so members from
	// an earlier payload do not linger.
	AddSelfAsOnline()

	// AddRoom adds a room to the room list.
	AddRoom(name string, ownedBySelf bool)

	// SwitchRoom moves the view to another room.
	SwitchRoom(name string)

	// ClearChat clears the visible transcript for a room.
	ClearChat(room string)
}

// Notifier emits user-facing notifications on four severity channels.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// NotifyBySeverity routes msg to the notification channel matching the wire
// severity. Unrecognized severities fall back to the info channel.
func NotifyBySeverity(n Notifier, severity protocol.Severity, msg string) {
	switch severity {
	case protocol.SeveritySuccess:
		n.Success(msg)
	case protocol.SeverityInfo:
		n.Info(msg)
	case protocol.SeverityWarning:
		n.Warning(msg)
	case protocol.SeverityError:
		n.Error(msg)
	default:
		n.Info(msg)
	}
}
