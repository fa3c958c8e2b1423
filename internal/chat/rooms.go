package chat

import (
	"sort"

	"github.com/omochice/ws-chat-client/pkg/protocol"
)

// RoomList tracks the user-created rooms known to this client. The Global
// room is implicit and never listed. The local copy is advisory; the server
// owns the authoritative room registry.
type RoomList struct {
	rooms map[string]string // room name -> creator
}

// NewRoomList creates an empty room list.
func NewRoomList() *RoomList {
	return &RoomList{rooms: make(map[string]string)}
}

// Replace rebuilds the list from a full all_rooms payload, dropping any
// Global entries the server may include.
func (l *RoomList) Replace(rooms []protocol.RoomInfo) {
	l.rooms = make(map[string]string, len(rooms))
	for _, room := range rooms {
		if room.RoomName == protocol.GlobalRoom {
			continue
		}
		l.rooms[room.RoomName] = room.RoomCreator
	}
}

// Add records a room from a room_create broadcast. It reports false for the
// Global room and for rooms already known.
func (l *RoomList) Add(name, creator string) bool {
	if name == protocol.GlobalRoom {
		return false
	}
	if _, ok := l.rooms[name]; ok {
		return false
	}
	l.rooms[name] = creator
	return true
}

// Contains reports whether name is a known user-created room.
func (l *RoomList) Contains(name string) bool {
	_, ok := l.rooms[name]
	return ok
}

// Creator returns the recorded creator of a known room.
func (l *RoomList) Creator(name string) (string, bool) {
	creator, ok := l.rooms[name]
	return creator, ok
}

// Count returns the number of known user-created rooms.
func (l *RoomList) Count() int { return len(l.rooms) }

// Names returns the known room names in sorted order.
func (l *RoomList) Names() []string {
	names := make([]string, 0, len(l.rooms))
	for name := range l.rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
