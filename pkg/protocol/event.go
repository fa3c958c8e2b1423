// Package protocol defines the wire protocol for the chat server:
// JSON-encoded events discriminated by an event_type field.
package protocol

import (
	"encoding/json"
	"fmt"
)

// EventType discriminates the shape and handling of a wire event.
type EventType string

const (
	EventConnectionRequest  EventType = "connection_request"
	EventConnectionResponse EventType = "connection_response"
	EventConnectionReject   EventType = "connection_reject"
	EventMessage            EventType = "message"
	EventMessageHistory     EventType = "message_history"
	EventTyping             EventType = "typing"
	EventSystem             EventType = "system"
	EventUsersOnline        EventType = "users_online"
	EventUserJoin           EventType = "user_join"
	EventUserLeave          EventType = "user_leave"
	EventAllRooms           EventType = "all_rooms"
	EventRoomCreate         EventType = "room_create"
	EventRoomCreateReject   EventType = "room_create_reject"
	EventRoomChatClear      EventType = "room_chat_clear"
	EventRoomSwitchRequest  EventType = "room_switch_request"
	EventRoomSwitchResponse EventType = "room_switch_response"
	EventRoomSwitchReject   EventType = "room_switch_reject"
)

// GlobalRoom is the implicit default room. The server never lists it among
// user-created rooms and clients must not surface it as one.
const GlobalRoom = "Global"

// Severity classifies system notifications.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Valid reports whether s is one of the four wire severities.
func (s Severity) Valid() bool {
	switch s {
	case SeveritySuccess, SeverityInfo, SeverityWarning, SeverityError:
		return true
	}
	return false
}

// Event is implemented by every wire event.
type Event interface {
	Type() EventType
}

// ConnectionRequest is the first event a client sends after the transport
// opens. The server may reject the connection based on the username.
type ConnectionRequest struct {
	EventType EventType `json:"event_type"`
	Username  string    `json:"username"`
}

// NewConnectionRequest creates a connection request for username.
func NewConnectionRequest(username string) *ConnectionRequest {
	return &ConnectionRequest{EventType: EventConnectionRequest, Username: username}
}

func (e *ConnectionRequest) Type() EventType { return EventConnectionRequest }

// ConnectionResponse confirms a connection request. UserID is the
// server-assigned identifier for this session.
type ConnectionResponse struct {
	EventType EventType `json:"event_type"`
	Username  string    `json:"username"`
	UserID    string    `json:"user_id"`
}

func (e *ConnectionResponse) Type() EventType { return EventConnectionResponse }

// ConnectionReject carries the server's reason for refusing a connection.
// The server is expected to close the connection afterward.
type ConnectionReject struct {
	EventType EventType `json:"event_type"`
	Response  string    `json:"response"`
}

func (e *ConnectionReject) Type() EventType { return EventConnectionReject }

// Message is a chat message, sent by clients and broadcast by the server.
type Message struct {
	EventType EventType `json:"event_type"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
}

// NewMessage creates a chat message from username.
func NewMessage(username, text string) *Message {
	return &Message{EventType: EventMessage, Username: username, Message: text}
}

func (e *Message) Type() EventType { return EventMessage }

// HistoryEntry is a single prior message within a MessageHistory event.
type HistoryEntry struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// MessageHistory replays the current room's prior messages in order.
type MessageHistory struct {
	EventType EventType      `json:"event_type"`
	Messages  []HistoryEntry `json:"messages"`
}

func (e *MessageHistory) Type() EventType { return EventMessageHistory }

// Typing signals that username started or stopped typing.
type Typing struct {
	EventType EventType `json:"event_type"`
	Username  string    `json:"username"`
	IsTyping  bool      `json:"is_typing"`
}

// NewTyping creates a typing indicator event for username.
func NewTyping(username string, isTyping bool) *Typing {
	return &Typing{EventType: EventTyping, Username: username, IsTyping: isTyping}
}

func (e *Typing) Type() EventType { return EventTyping }

// System is a server notification routed by severity.
type System struct {
	EventType EventType `json:"event_type"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
}

func (e *System) Type() EventType { return EventSystem }

// UserStatus is a roster entry within a UsersOnline event.
type UserStatus struct {
	Username string `json:"username"`
	Status   string `json:"status"`
}

// UsersOnline carries the full roster of the current room. Receiving it
// replaces any previously known roster.
type UsersOnline struct {
	EventType EventType    `json:"event_type"`
	Users     []UserStatus `json:"users"`
}

func (e *UsersOnline) Type() EventType { return EventUsersOnline }

// UserJoin announces a user joining the current room.
type UserJoin struct {
	EventType EventType `json:"event_type"`
	Username  string    `json:"username"`
}

func (e *UserJoin) Type() EventType { return EventUserJoin }

// UserLeave announces a user leaving the current room.
type UserLeave struct {
	EventType EventType `json:"event_type"`
	Username  string    `json:"username"`
}

func (e *UserLeave) Type() EventType { return EventUserLeave }

// RoomInfo describes a room within AllRooms and RoomCreate events.
type RoomInfo struct {
	RoomName       string   `json:"room_name"`
	RoomCreator    string   `json:"room_creator"`
	ConnectedUsers []string `json:"connected_users"`
}

// AllRooms carries the full list of known rooms. Receiving it replaces any
// previously known room list.
type AllRooms struct {
	EventType EventType  `json:"event_type"`
	Rooms     []RoomInfo `json:"rooms"`
}

func (e *AllRooms) Type() EventType { return EventAllRooms }

// RoomCreate requests creation of a room when sent by a client, and
// announces a created room when broadcast by the server. There is no
// dedicated success response: the broadcast is the only acknowledgment the
// creator receives.
type RoomCreate struct {
	EventType EventType `json:"event_type"`
	Room      RoomInfo  `json:"room"`
}

// NewRoomCreate creates a room creation request for roomName by creator.
func NewRoomCreate(roomName, creator string) *RoomCreate {
	return &RoomCreate{
		EventType: EventRoomCreate,
		Room: RoomInfo{
			RoomName:       roomName,
			RoomCreator:    creator,
			ConnectedUsers: []string{},
		},
	}
}

func (e *RoomCreate) Type() EventType { return EventRoomCreate }

// RoomCreateReject carries the server's reason for refusing a room creation.
type RoomCreateReject struct {
	EventType EventType `json:"event_type"`
	Response  string    `json:"response"`
}

func (e *RoomCreateReject) Type() EventType { return EventRoomCreateReject }

// RoomChatClear requests clearing of a room's transcript when sent by a
// client, and orders the clear when broadcast by the server.
type RoomChatClear struct {
	EventType EventType `json:"event_type"`
	Username  string    `json:"username"`
	RoomName  string    `json:"room_name"`
}

// NewRoomChatClear creates a chat clear request for roomName by username.
func NewRoomChatClear(roomName, username string) *RoomChatClear {
	return &RoomChatClear{EventType: EventRoomChatClear, Username: username, RoomName: roomName}
}

func (e *RoomChatClear) Type() EventType { return EventRoomChatClear }

// RoomSwitchRequest asks the server to move this client to another room.
// The client must not switch locally until RoomSwitchResponse arrives.
type RoomSwitchRequest struct {
	EventType EventType `json:"event_type"`
	RoomName  string    `json:"room_name"`
}

// NewRoomSwitchRequest creates a room switch request for roomName.
func NewRoomSwitchRequest(roomName string) *RoomSwitchRequest {
	return &RoomSwitchRequest{EventType: EventRoomSwitchRequest, RoomName: roomName}
}

func (e *RoomSwitchRequest) Type() EventType { return EventRoomSwitchRequest }

// RoomSwitchResponse confirms a previously requested room switch.
type RoomSwitchResponse struct {
	EventType EventType `json:"event_type"`
	RoomName  string    `json:"room_name"`
}

func (e *RoomSwitchResponse) Type() EventType { return EventRoomSwitchResponse }

// RoomSwitchReject carries the server's reason for refusing a room switch.
type RoomSwitchReject struct {
	EventType EventType `json:"event_type"`
	Response  string    `json:"response"`
}

func (e *RoomSwitchReject) Type() EventType { return EventRoomSwitchReject }

// Unknown represents an event whose event_type is not part of this schema.
// Unknown events decode without error so that newer servers can introduce
// event types without breaking older clients.
type Unknown struct {
	EventType EventType
	Raw       json.RawMessage
}

func (e *Unknown) Type() EventType { return e.EventType }

// Encode encodes the event to its JSON wire format.
func Encode(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s event: %w", e.Type(), err)
	}
	return data, nil
}

// Decode decodes a JSON wire payload into its typed event. Payloads with an
// unrecognized event_type decode to *Unknown rather than failing.
func Decode(data []byte) (Event, error) {
	var probe struct {
		EventType EventType `json:"event_type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode event: %w", err)
	}

	var ev Event
	switch probe.EventType {
	case EventConnectionRequest:
		ev = &ConnectionRequest{}
	case EventConnectionResponse:
		ev = &ConnectionResponse{}
	case EventConnectionReject:
		ev = &ConnectionReject{}
	case EventMessage:
		ev = &Message{}
	case EventMessageHistory:
		ev = &MessageHistory{}
	case EventTyping:
		ev = &Typing{}
	case EventSystem:
		ev = &System{}
	case EventUsersOnline:
		ev = &UsersOnline{}
	case EventUserJoin:
		ev = &UserJoin{}
	case EventUserLeave:
		ev = &UserLeave{}
	case EventAllRooms:
		ev = &AllRooms{}
	case EventRoomCreate:
		ev = &RoomCreate{}
	case EventRoomCreateReject:
		ev = &RoomCreateReject{}
	case EventRoomChatClear:
		ev = &RoomChatClear{}
	case EventRoomSwitchRequest:
		ev = &RoomSwitchRequest{}
	case EventRoomSwitchResponse:
		ev = &RoomSwitchResponse{}
	case EventRoomSwitchReject:
		ev = &RoomSwitchReject{}
	default:
		return &Unknown{
			EventType: probe.EventType,
			Raw:       append(json.RawMessage(nil), data...),
		}, nil
	}

	if err := json.Unmarshal(data, ev); err != nil {
		return nil, fmt.Errorf("failed to decode %s event: %w", probe.EventType, err)
	}
	return ev, nil
}
