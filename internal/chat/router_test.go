package chat

import (
	"reflect"
	"testing"

	"github.com/omochice/ws-chat-client/pkg/protocol"
)

func TestHandle_MessageFromOther(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.Message{Username: "alice", Message: "hi"})

	want := []string{"AddMessage|hi|other|alice"}
	if !reflect.DeepEqual(ui.calls, want) {
		t.Errorf("UI calls = %v, want %v", ui.calls, want)
	}
}

func TestHandle_OwnMessageEchoSuppressed(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.Message{Username: "bob", Message: "hi"})

	if len(ui.calls) != 0 {
		t.Errorf("UI calls = %v, want none for own echo", ui.calls)
	}
}

func TestHandle_MessageHistory(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.MessageHistory{Messages: []protocol.HistoryEntry{
		{Username: "alice", Message: "hi"},
		{Username: "bob", Message: "hello"},
	}})

	want := []string{
		"AddMessage|hi|other|alice",
		"AddMessage|hello|own|bob",
	}
	if !reflect.DeepEqual(ui.calls, want) {
		t.Errorf("UI calls = %v, want %v", ui.calls, want)
	}
}

// Given history with one message from alice and local username bob, exactly
// one render with ownership "other" occurs.
func TestHandle_MessageHistorySingleOtherRender(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.MessageHistory{Messages: []protocol.HistoryEntry{
		{Username: "alice", Message: "hi"},
	}})

	if got := ui.count("AddMessage"); got != 1 {
		t.Errorf("AddMessage calls = %d, want 1", got)
	}
	if ui.calls[0] != "AddMessage|hi|other|alice" {
		t.Errorf("render = %s, want other-tagged alice message", ui.calls[0])
	}
}

func TestHandle_UsersOnline(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.UsersOnline{Users: []protocol.UserStatus{
		{Username: "bob", Status: StatusOnline},
		{Username: "alice", Status: StatusTyping},
		{Username: "carol"},
	}})

	want := []string{
		"AddSelfAsOnline",
		"AddMember|alice|typing",
		"AddMember|carol|online",
		"UpdateOnlineCount",
	}
	if !reflect.DeepEqual(ui.calls, want) {
		t.Errorf("UI calls = %v, want %v", ui.calls, want)
	}
	if got := engine.OnlineUsers(); !reflect.DeepEqual(got, []string{"alice", "carol"}) {
		t.Errorf("OnlineUsers() = %v, want [alice carol]", got)
	}
}

func TestHandle_UsersOnlineIdempotent(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")
	payload := &protocol.UsersOnline{Users: []protocol.UserStatus{
		{Username: "alice", Status: StatusOnline},
	}}

	engine.Handle(payload)
	first := engine.OnlineUsers()
	ui.reset()

	engine.Handle(payload)

	if got := engine.OnlineUsers(); !reflect.DeepEqual(got, first) {
		t.Errorf("OnlineUsers() after second users_online = %v, want %v", got, first)
	}
	if got := ui.count("AddMember"); got != 1 {
		t.Errorf("AddMember calls on replay = %d, want 1 (full replace)", got)
	}
}

// The server re-announces the full roster after a room switch. The second
// payload must fully replace the first: AddSelfAsOnline opens the replace so
// the UI can reset, and only members of the new payload are re-added.
func TestHandle_UsersOnlineReplacesPreviousRoster(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.UsersOnline{Users: []protocol.UserStatus{
		{Username: "alice", Status: StatusOnline},
	}})
	ui.reset()

	engine.Handle(&protocol.UsersOnline{Users: []protocol.UserStatus{
		{Username: "carol", Status: StatusOnline},
	}})

	want := []string{
		"AddSelfAsOnline",
		"AddMember|carol|online",
		"UpdateOnlineCount",
	}
	if !reflect.DeepEqual(ui.calls, want) {
		t.Errorf("UI calls = %v, want %v", ui.calls, want)
	}
	if got := engine.OnlineUsers(); !reflect.DeepEqual(got, []string{"carol"}) {
		t.Errorf("OnlineUsers() = %v, want [carol]", got)
	}
}

func TestHandle_UserJoinAndLeave(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.UserJoin{Username: "alice"})
	engine.Handle(&protocol.UserLeave{Username: "alice"})

	want := []string{
		"Info|User alice joined the chat",
		"AddMember|alice|online",
		"UpdateOnlineCount",
		"Info|User alice left the chat",
		"RemoveMember|alice",
		"UpdateOnlineCount",
	}
	if !reflect.DeepEqual(ui.calls, want) {
		t.Errorf("UI calls = %v, want %v", ui.calls, want)
	}
	if got := engine.OnlineUsers(); len(got) != 0 {
		t.Errorf("OnlineUsers() = %v, want empty after join+leave", got)
	}
}

func TestHandle_SelfJoinLeaveSuppressed(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.UserJoin{Username: "bob"})
	engine.Handle(&protocol.UserLeave{Username: "bob"})

	if len(ui.calls) != 0 {
		t.Errorf("UI calls = %v, want none for self join/leave", ui.calls)
	}
}

func TestHandle_DuplicateJoinSuppressed(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.UserJoin{Username: "alice"})
	ui.reset()
	engine.Handle(&protocol.UserJoin{Username: "alice"})

	if len(ui.calls) != 0 {
		t.Errorf("UI calls = %v, want none for duplicate join", ui.calls)
	}
}

func TestHandle_TypingUpdatesStatus(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")
	engine.Handle(&protocol.UserJoin{Username: "alice"})
	ui.reset()

	engine.Handle(&protocol.Typing{Username: "alice", IsTyping: true})
	engine.Handle(&protocol.Typing{Username: "alice", IsTyping: false})

	want := []string{
		"UpdateMemberStatus|alice|typing",
		"UpdateMemberStatus|alice|online",
	}
	if !reflect.DeepEqual(ui.calls, want) {
		t.Errorf("UI calls = %v, want %v", ui.calls, want)
	}
}

func TestHandle_OwnTypingEchoSuppressed(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.Typing{Username: "bob", IsTyping: true})

	if len(ui.calls) != 0 {
		t.Errorf("UI calls = %v, want none for own typing echo", ui.calls)
	}
}

func TestHandle_SystemSeverityRouting(t *testing.T) {
	tests := []struct {
		severity protocol.Severity
		want     string
	}{
		{protocol.SeveritySuccess, "Success|done"},
		{protocol.SeverityInfo, "Info|done"},
		{protocol.SeverityWarning, "Warning|done"},
		{protocol.SeverityError, "Error|done"},
		{protocol.Severity("bogus"), "Info|done"},
	}

	for _, tt := range tests {
		engine, _, ui, _ := newTestEngine("bob")
		engine.Handle(&protocol.System{Severity: tt.severity, Message: "done"})

		if !reflect.DeepEqual(ui.calls, []string{tt.want}) {
			t.Errorf("severity %s: UI calls = %v, want [%s]", tt.severity, ui.calls, tt.want)
		}
	}
}

func TestHandle_AllRoomsExcludesGlobal(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.AllRooms{Rooms: []protocol.RoomInfo{
		{RoomName: protocol.GlobalRoom, RoomCreator: "server"},
		{RoomName: "Lobby", RoomCreator: "alice"},
		{RoomName: "Mine", RoomCreator: "bob"},
	}})

	want := []string{
		"AddRoom|Lobby|other",
		"AddRoom|Mine|self",
	}
	if !reflect.DeepEqual(ui.calls, want) {
		t.Errorf("UI calls = %v, want %v", ui.calls, want)
	}
	if got := engine.Rooms(); !reflect.DeepEqual(got, []string{"Lobby", "Mine"}) {
		t.Errorf("Rooms() = %v, want [Lobby Mine]", got)
	}
}

// The room_create broadcast is the only creation acknowledgment: exactly one
// room-list addition and one success notification.
func TestHandle_RoomCreate(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.RoomCreate{Room: protocol.RoomInfo{
		RoomName:    "Lobby",
		RoomCreator: "alice",
	}})

	want := []string{
		"AddRoom|Lobby|other",
		"Success|Room Lobby created by alice",
	}
	if !reflect.DeepEqual(ui.calls, want) {
		t.Errorf("UI calls = %v, want %v", ui.calls, want)
	}
}

func TestHandle_RoomCreateOwn(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.RoomCreate{Room: protocol.RoomInfo{
		RoomName:    "Mine",
		RoomCreator: "bob",
	}})

	if got := ui.calls[0]; got != "AddRoom|Mine|self" {
		t.Errorf("first call = %s, want self-owned AddRoom", got)
	}
}

func TestHandle_RoomCreateGlobalIgnored(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.RoomCreate{Room: protocol.RoomInfo{
		RoomName:    protocol.GlobalRoom,
		RoomCreator: "alice",
	}})

	if len(ui.calls) != 0 {
		t.Errorf("UI calls = %v, want none for Global room_create", ui.calls)
	}
}

func TestHandle_RoomCreateDuplicateSuppressed(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")
	broadcast := &protocol.RoomCreate{Room: protocol.RoomInfo{
		RoomName:    "Lobby",
		RoomCreator: "alice",
	}}

	engine.Handle(broadcast)
	ui.reset()
	engine.Handle(broadcast)

	if len(ui.calls) != 0 {
		t.Errorf("UI calls = %v, want none for duplicate broadcast", ui.calls)
	}
}

func TestHandle_RoomSwitchResponse(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.RoomSwitchResponse{RoomName: "Lobby"})

	if got := engine.CurrentRoom(); got != "Lobby" {
		t.Errorf("CurrentRoom() = %s, want Lobby", got)
	}
	if !reflect.DeepEqual(ui.calls, []string{"SwitchRoom|Lobby"}) {
		t.Errorf("UI calls = %v, want [SwitchRoom|Lobby]", ui.calls)
	}
}

func TestHandle_RoomSwitchResponseCurrentRoomNoOp(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.RoomSwitchResponse{RoomName: protocol.GlobalRoom})

	if len(ui.calls) != 0 {
		t.Errorf("UI calls = %v, want none for echo of current room", ui.calls)
	}
}

func TestHandle_Rejections(t *testing.T) {
	events := []protocol.Event{
		&protocol.ConnectionReject{Response: "nope"},
		&protocol.RoomCreateReject{Response: "nope"},
		&protocol.RoomSwitchReject{Response: "nope"},
	}

	for _, ev := range events {
		engine, _, ui, _ := newTestEngine("bob")
		engine.Handle(ev)

		if !reflect.DeepEqual(ui.calls, []string{"Error|nope"}) {
			t.Errorf("%s: UI calls = %v, want [Error|nope]", ev.Type(), ui.calls)
		}
	}
}

func TestHandle_RoomChatClear(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.RoomChatClear{Username: "alice", RoomName: "Lobby"})

	if !reflect.DeepEqual(ui.calls, []string{"ClearChat|Lobby"}) {
		t.Errorf("UI calls = %v, want [ClearChat|Lobby]", ui.calls)
	}
}

func TestHandle_ConnectionResponse(t *testing.T) {
	engine, _, _, _ := newTestEngine("bob")

	engine.Handle(&protocol.ConnectionResponse{Username: "bob", UserID: "id-1"})

	if !engine.session.Established() {
		t.Error("session not established after connection_response")
	}
	if got := engine.session.UserID(); got != "id-1" {
		t.Errorf("UserID() = %s, want id-1", got)
	}
}

func TestHandle_UnknownEvent(t *testing.T) {
	engine, _, ui, _ := newTestEngine("bob")

	engine.Handle(&protocol.Unknown{EventType: "group_invite"})

	if len(ui.calls) != 0 {
		t.Errorf("UI calls = %v, want none for unknown event", ui.calls)
	}
}
