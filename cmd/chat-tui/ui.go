package main

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jroimartin/gocui"
	"github.com/omochice/ws-chat-client/internal/chat"
	"github.com/omochice/ws-chat-client/pkg/protocol"
)

// View names.
const (
	msgView    = "messages"
	roomView   = "rooms"
	userView   = "users"
	statusView = "status"
	inputView  = "input"
)

// ChatUI renders engine callbacks into gocui views. All mutations go
// through gui.Update so they run on the gocui event loop.
type ChatUI struct {
	gui      *gocui.Gui
	username string

	mu      sync.Mutex
	members map[string]string // username -> status
	rooms   map[string]bool   // room name -> owned by self
	current string
}

// NewChatUI creates the UI for the local username.
func NewChatUI(gui *gocui.Gui, username string) *ChatUI {
	return &ChatUI{
		gui:      gui,
		username: username,
		members:  make(map[string]string),
		rooms:    make(map[string]bool),
		current:  protocol.GlobalRoom,
	}
}

func (ui *ChatUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	sidebarWidth := 22
	msgWidth := maxX - sidebarWidth - 1
	msgHeight := maxY - 5
	roomHeight := msgHeight / 2

	if v, err := g.SetView(msgView, 0, 0, msgWidth, msgHeight); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Messages"
		v.Wrap = true
		v.Autoscroll = true
	}

	if v, err := g.SetView(roomView, msgWidth+1, 0, maxX-1, roomHeight); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Rooms"
		v.Wrap = true
	}

	if v, err := g.SetView(userView, msgWidth+1, roomHeight+1, maxX-1, msgHeight); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Online Users"
		v.Wrap = true
	}

	if v, err := g.SetView(statusView, 0, msgHeight+1, maxX-1, msgHeight+3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Wrap = true
	}

	if v, err := g.SetView(inputView, 0, msgHeight+3, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Input"
		v.Editable = true
		v.Wrap = true

		if _, err := g.SetCurrentView(inputView); err != nil {
			return err
		}
	}

	return nil
}

// appendLine writes one line to a view on the gocui loop.
func (ui *ChatUI) appendLine(view, line string) {
	ui.gui.Update(func(g *gocui.Gui) error {
		v, err := g.View(view)
		if err != nil {
			return nil
		}
		fmt.Fprintln(v, line)
		return nil
	})
}

func (ui *ChatUI) setStatus(line string) {
	ui.gui.Update(func(g *gocui.Gui) error {
		v, err := g.View(statusView)
		if err != nil {
			return nil
		}
		v.Clear()
		fmt.Fprintln(v, line)
		return nil
	})
}

func (ui *ChatUI) redrawUsers() {
	ui.mu.Lock()
	names := make([]string, 0, len(ui.members))
	for name := range ui.members {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, 0, len(names)+1)
	lines = append(lines, fmt.Sprintf("%s (you)", ui.username))
	for _, name := range names {
		if ui.members[name] == chat.StatusTyping {
			lines = append(lines, name+" (typing...)")
			continue
		}
		lines = append(lines, name)
	}
	count := len(ui.members) + 1
	ui.mu.Unlock()

	ui.gui.Update(func(g *gocui.Gui) error {
		v, err := g.View(userView)
		if err != nil {
			return nil
		}
		v.Clear()
		v.Title = fmt.Sprintf("Online Users (%d)", count)
		fmt.Fprintln(v, strings.Join(lines, "\n"))
		return nil
	})
}

func (ui *ChatUI) redrawRooms() {
	ui.mu.Lock()
	names := make([]string, 0, len(ui.rooms))
	for name := range ui.rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := []string{protocol.GlobalRoom}
	for _, name := range names {
		if ui.rooms[name] {
			lines = append(lines, name+" (yours)")
			continue
		}
		lines = append(lines, name)
	}
	current := ui.current
	ui.mu.Unlock()

	ui.gui.Update(func(g *gocui.Gui) error {
		v, err := g.View(roomView)
		if err != nil {
			return nil
		}
		v.Clear()
		v.Title = fmt.Sprintf("Rooms [%s]", current)
		fmt.Fprintln(v, strings.Join(lines, "\n"))
		return nil
	})
}

func (ui *ChatUI) AddMessage(text string, ownership chat.Ownership, author string) {
	if ownership == chat.OwnershipOwn {
		ui.appendLine(msgView, fmt.Sprintf("[you] %s", text))
		return
	}
	ui.appendLine(msgView, fmt.Sprintf("[%s] %s", author, text))
}

func (ui *ChatUI) AddMember(username, status string) {
	ui.mu.Lock()
	ui.members[username] = status
	ui.mu.Unlock()
	ui.redrawUsers()
}

func (ui *ChatUI) UpdateMemberStatus(username, status string) {
	ui.mu.Lock()
	ui.members[username] = status
	ui.mu.Unlock()
	ui.redrawUsers()
}

func (ui *ChatUI) RemoveMember(username string) {
	ui.mu.Lock()
	delete(ui.members, username)
	ui.mu.Unlock()
	ui.redrawUsers()
}

func (ui *ChatUI) UpdateOnlineCount() {
	ui.redrawUsers()
}

func (ui *ChatUI) AddSelfAsOnline() {
	// Start of a full roster replace: drop members carried over from the
	// previous users_online payload before AddMember repopulates.
	ui.mu.Lock()
	ui.members = make(map[string]string)
	ui.mu.Unlock()
	ui.redrawUsers()
}

func (ui *ChatUI) AddRoom(name string, ownedBySelf bool) {
	ui.mu.Lock()
	ui.rooms[name] = ownedBySelf
	ui.mu.Unlock()
	ui.redrawRooms()
}

func (ui *ChatUI) SwitchRoom(name string) {
	ui.mu.Lock()
	ui.current = name
	ui.mu.Unlock()
	ui.redrawRooms()
	ui.appendLine(msgView, fmt.Sprintf("--- switched to room %s ---", name))
}

func (ui *ChatUI) ClearChat(room string) {
	ui.mu.Lock()
	current := ui.current
	ui.mu.Unlock()
	if room != current {
		return
	}
	ui.gui.Update(func(g *gocui.Gui) error {
		v, err := g.View(msgView)
		if err != nil {
			return nil
		}
		v.Clear()
		return nil
	})
}

func (ui *ChatUI) Success(msg string) { ui.appendLine(msgView, "(success) "+msg) }
func (ui *ChatUI) Info(msg string)    { ui.appendLine(msgView, "(info) "+msg) }
func (ui *ChatUI) Warning(msg string) { ui.appendLine(msgView, "(warning) "+msg) }
func (ui *ChatUI) Error(msg string)   { ui.appendLine(msgView, "(error) "+msg) }
