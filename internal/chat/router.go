package chat

import (
	"fmt"
	"log"

	"github.com/omochice/ws-chat-client/pkg/protocol"
)

// Handle dispatches one inbound event to its handling branch. Events are
// handled strictly in receipt order; unknown event types are logged and
// ignored so newer servers never break this client.
func (e *Engine) Handle(ev protocol.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch ev := ev.(type) {
	case *protocol.ConnectionResponse:
		e.handleConnectionResponse(ev)
	case *protocol.ConnectionReject:
		e.notify.Error(ev.Response)
	case *protocol.Message:
		e.handleMessage(ev)
	case *protocol.MessageHistory:
		e.handleMessageHistory(ev)
	case *protocol.UsersOnline:
		e.handleUsersOnline(ev)
	case *protocol.UserJoin:
		e.handleUserJoin(ev)
	case *protocol.UserLeave:
		e.handleUserLeave(ev)
	case *protocol.System:
		NotifyBySeverity(e.notify, ev.Severity, ev.Message)
	case *protocol.Typing:
		e.handleTyping(ev)
	case *protocol.AllRooms:
		e.handleAllRooms(ev)
	case *protocol.RoomCreate:
		e.handleRoomCreate(ev)
	case *protocol.RoomCreateReject:
		e.notify.Error(ev.Response)
	case *protocol.RoomSwitchResponse:
		e.handleRoomSwitchResponse(ev)
	case *protocol.RoomSwitchReject:
		e.notify.Error(ev.Response)
	case *protocol.RoomChatClear:
		e.ui.ClearChat(ev.RoomName)
	case *protocol.Unknown:
		log.Printf("Received unknown event type %q", ev.EventType)
	default:
		log.Printf("Received unexpected event type %q", ev.Type())
	}
}

func (e *Engine) handleConnectionResponse(ev *protocol.ConnectionResponse) {
	e.session.establish(ev.UserID)
	log.Printf("Connection established as %s", ev.Username)
}

// handleMessage renders messages from other users. The local user's own
// messages were rendered at send time; the broadcast echo is dropped.
func (e *Engine) handleMessage(ev *protocol.Message) {
	if ev.Username == e.session.Username() {
		return
	}
	e.ui.AddMessage(ev.Message, OwnershipOther, ev.Username)
}

func (e *Engine) handleMessageHistory(ev *protocol.MessageHistory) {
	for _, entry := range ev.Messages {
		ownership := OwnershipOther
		if entry.Username == e.session.Username() {
			ownership = OwnershipOwn
		}
		e.ui.AddMessage(entry.Message, ownership, entry.Username)
	}
}

// handleUsersOnline replaces the whole roster: self first, then every other
// listed user with the server-supplied status.
func (e *Engine) handleUsersOnline(ev *protocol.UsersOnline) {
	users := make(map[string]string, len(ev.Users))
	for _, user := range ev.Users {
		users[user.Username] = user.Status
	}
	e.roster.Replace(users)

	e.ui.AddSelfAsOnline()
	for _, user := range ev.Users {
		if user.Username == e.session.Username() {
			continue
		}
		status, ok := e.roster.Status(user.Username)
		if !ok {
			status = StatusOnline
		}
		e.ui.AddMember(user.Username, status)
	}
	e.ui.UpdateOnlineCount()
}

func (e *Engine) handleUserJoin(ev *protocol.UserJoin) {
	if ev.Username == e.session.Username() {
		return
	}
	if !e.roster.Add(ev.Username) {
		return
	}
	e.notify.Info(fmt.Sprintf("User %s joined the chat", ev.Username))
	e.ui.AddMember(ev.Username, StatusOnline)
	e.ui.UpdateOnlineCount()
}

func (e *Engine) handleUserLeave(ev *protocol.UserLeave) {
	if ev.Username == e.session.Username() {
		return
	}
	if !e.roster.Remove(ev.Username) {
		return
	}
	e.notify.Info(fmt.Sprintf("User %s left the chat", ev.Username))
	e.ui.RemoveMember(ev.Username)
	e.ui.UpdateOnlineCount()
}

func (e *Engine) handleTyping(ev *protocol.Typing) {
	if ev.Username == e.session.Username() {
		return
	}
	status := StatusOnline
	if ev.IsTyping {
		status = StatusTyping
	}
	e.roster.SetStatus(ev.Username, status)
	e.ui.UpdateMemberStatus(ev.Username, status)
}

func (e *Engine) handleAllRooms(ev *protocol.AllRooms) {
	e.rooms.Replace(ev.Rooms)
	for _, room := range ev.Rooms {
		if room.RoomName == protocol.GlobalRoom {
			continue
		}
		e.ui.AddRoom(room.RoomName, room.RoomCreator == e.session.Username())
	}
}

// handleRoomCreate processes the room_create broadcast, which doubles as the
// creation acknowledgment: the creator recognizes its own request echoed
// back through this same path.
func (e *Engine) handleRoomCreate(ev *protocol.RoomCreate) {
	name := ev.Room.RoomName
	creator := ev.Room.RoomCreator
	if name == protocol.GlobalRoom {
		return
	}
	if !e.rooms.Add(name, creator) {
		return
	}
	e.ui.AddRoom(name, creator == e.session.Username())
	e.notify.Success(fmt.Sprintf("Room %s created by %s", name, creator))
}

// handleRoomSwitchResponse performs the confirmed room transition. A
// response echoing the already-current room is a no-op.
func (e *Engine) handleRoomSwitchResponse(ev *protocol.RoomSwitchResponse) {
	if !e.session.switchRoom(ev.RoomName) {
		return
	}
	e.ui.SwitchRoom(ev.RoomName)
}
