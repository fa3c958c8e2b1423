package chat

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/omochice/ws-chat-client/pkg/protocol"
)

// Sender transmits an outbound event to the server.
// *client.Client satisfies this interface.
type Sender interface {
	Send(ev protocol.Event) error
}

// Engine reconciles local chat state with server broadcasts and produces
// outbound events for user actions. Inbound events must be handled by a
// single consumer; the engine serializes its own state against concurrent
// user input and the typing poll.
type Engine struct {
	mu      sync.Mutex
	session *Session
	roster  *Roster
	rooms   *RoomList
	typer   *Debouncer
	ui      UI
	notify  Notifier
	sender  Sender
	now     func() time.Time
}

// NewEngine creates an engine for the local username.
func NewEngine(username string, sender Sender, ui UI, notify Notifier) *Engine {
	return &Engine{
		session: NewSession(username),
		roster:  NewRoster(username),
		rooms:   NewRoomList(),
		typer:   NewDebouncer(),
		ui:      ui,
		notify:  notify,
		sender:  sender,
		now:     time.Now,
	}
}

// Username returns the local username.
func (e *Engine) Username() string { return e.session.Username() }

// CurrentRoom returns the confirmed current room.
func (e *Engine) CurrentRoom() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.CurrentRoom()
}

// OnlineUsers returns the tracked usernames of other online users, sorted.
func (e *Engine) OnlineUsers() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.roster.Usernames()
}

// Rooms returns the known user-created room names, sorted.
func (e *Engine) Rooms() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rooms.Names()
}

// SendChatMessage validates and sends a chat message, rendering it locally
// as the user's own. The server echoes the message back to the sender; that
// echo is suppressed so the transcript gains exactly one entry.
func (e *Engine) SendChatMessage(text string) error {
	if err := protocol.ValidateMessage(text); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.sender.Send(protocol.NewMessage(e.session.Username(), text)); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	e.ui.AddMessage(text, OwnershipOwn, e.session.Username())
	return nil
}

// CreateRoom requests creation of a room. The only acknowledgment is the
// room_create broadcast (or a room_create_reject); no local state changes
// until it arrives.
func (e *Engine) CreateRoom(name string) error {
	if err := protocol.ValidateRoomName(name); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.sender.Send(protocol.NewRoomCreate(name, e.session.Username())); err != nil {
		return fmt.Errorf("failed to request room creation: %w", err)
	}
	return nil
}

// SwitchRoom requests a switch to another room. The session moves only when
// the server confirms with a room_switch_response.
func (e *Engine) SwitchRoom(name string) error {
	if err := protocol.ValidateRoomName(name); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.sender.Send(protocol.NewRoomSwitchRequest(name)); err != nil {
		return fmt.Errorf("failed to request room switch: %w", err)
	}
	return nil
}

// ClearRoomChat requests clearing of the current room's transcript. The
// transcript clears when the room_chat_clear broadcast arrives.
func (e *Engine) ClearRoomChat() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	ev := protocol.NewRoomChatClear(e.session.CurrentRoom(), e.session.Username())
	if err := e.sender.Send(ev); err != nil {
		return fmt.Errorf("failed to request chat clear: %w", err)
	}
	return nil
}

// Activity records local keystroke activity, sending typing(true) on the
// first keystroke of a burst and nothing on subsequent ones. The send
// happens under the lock so the wire order of typing indicators matches
// the debouncer transitions when the poll loop races keystrokes.
func (e *Engine) Activity() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.typer.Activity(e.now()) {
		return nil
	}
	if err := e.sender.Send(protocol.NewTyping(e.session.Username(), true)); err != nil {
		return fmt.Errorf("failed to send typing indicator: %w", err)
	}
	return nil
}

// PollTyping checks for typing idleness, sending typing(false) once the
// idle threshold has passed.
func (e *Engine) PollTyping() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.typer.Poll(e.now()) {
		return nil
	}
	if err := e.sender.Send(protocol.NewTyping(e.session.Username(), false)); err != nil {
		return fmt.Errorf("failed to send typing indicator: %w", err)
	}
	return nil
}

// RunTypingLoop drives PollTyping at the fixed poll interval until ctx is
// canceled. Send failures are logged; the loop carries on.
func (e *Engine) RunTypingLoop(ctx context.Context) {
	ticker := time.NewTicker(TypingPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := e.PollTyping(); err != nil {
				log.Printf("Typing poll: %v", err)
			}
		}
	}
}

// Run handles events until the channel closes. It is the single consumer
// required by the inbound ordering guarantee.
func (e *Engine) Run(events <-chan protocol.Event) {
	for ev := range events {
		e.Handle(ev)
	}
}
