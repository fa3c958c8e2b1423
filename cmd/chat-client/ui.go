package main

import (
	"fmt"

	"github.com/omochice/ws-chat-client/internal/chat"
)

// terminalUI renders engine callbacks as plain stdout lines.
type terminalUI struct{}

func (t *terminalUI) AddMessage(text string, ownership chat.Ownership, author string) {
	if ownership == chat.OwnershipOwn {
		fmt.Printf("[you]: %s\n", text)
		return
	}
	fmt.Printf("[%s]: %s\n", author, text)
}

// Membership changes are announced through the notifier; the member list
// itself is rendered on demand via /users.
func (t *terminalUI) AddMember(username, status string) {}
func (t *terminalUI) RemoveMember(username string)      {}
func (t *terminalUI) UpdateOnlineCount()                {}
func (t *terminalUI) AddSelfAsOnline()                  {}

func (t *terminalUI) UpdateMemberStatus(username, status string) {
	if status == chat.StatusTyping {
		fmt.Printf("*** %s is typing... ***\n", username)
	}
}

func (t *terminalUI) AddRoom(name string, ownedBySelf bool) {
	if ownedBySelf {
		fmt.Printf("*** room available: %s (yours) ***\n", name)
		return
	}
	fmt.Printf("*** room available: %s ***\n", name)
}

func (t *terminalUI) SwitchRoom(name string) {
	fmt.Printf("*** switched to room %s ***\n", name)
}

func (t *terminalUI) ClearChat(room string) {
	fmt.Printf("*** chat cleared for room %s ***\n", room)
}

func (t *terminalUI) Success(msg string) { fmt.Printf("(success) %s\n", msg) }
func (t *terminalUI) Info(msg string)    { fmt.Printf("(info) %s\n", msg) }
func (t *terminalUI) Warning(msg string) { fmt.Printf("(warning) %s\n", msg) }
func (t *terminalUI) Error(msg string)   { fmt.Printf("(error) %s\n", msg) }
