package chat

import (
	"strings"
	"time"

	"github.com/omochice/ws-chat-client/pkg/protocol"
)

// recorderUI records every UI and Notifier call for assertions.
type recorderUI struct {
	calls []string
}

func (r *recorderUI) record(parts ...string) {
	r.calls = append(r.calls, strings.Join(parts, "|"))
}

func (r *recorderUI) AddMessage(text string, ownership Ownership, author string) {
	r.record("AddMessage", text, string(ownership), author)
}
func (r *recorderUI) AddMember(username, status string) { r.record("AddMember", username, status) }
func (r *recorderUI) UpdateMemberStatus(username, status string) {
	r.record("UpdateMemberStatus", username, status)
}
func (r *recorderUI) RemoveMember(username string) { r.record("RemoveMember", username) }
func (r *recorderUI) UpdateOnlineCount()           { r.record("UpdateOnlineCount") }
func (r *recorderUI) AddSelfAsOnline()             { r.record("AddSelfAsOnline") }
func (r *recorderUI) AddRoom(name string, ownedBySelf bool) {
	owned := "other"
	if ownedBySelf {
		owned = "self"
	}
	r.record("AddRoom", name, owned)
}
func (r *recorderUI) SwitchRoom(name string) { r.record("SwitchRoom", name) }
func (r *recorderUI) ClearChat(room string)  { r.record("ClearChat", room) }

func (r *recorderUI) Success(msg string) { r.record("Success", msg) }
func (r *recorderUI) Info(msg string)    { r.record("Info", msg) }
func (r *recorderUI) Warning(msg string) { r.record("Warning", msg) }
func (r *recorderUI) Error(msg string)   { r.record("Error", msg) }

// count returns how many recorded calls start with prefix.
func (r *recorderUI) count(prefix string) int {
	n := 0
	for _, call := range r.calls {
		if call == prefix || strings.HasPrefix(call, prefix+"|") {
			n++
		}
	}
	return n
}

// reset drops all recorded calls.
func (r *recorderUI) reset() { r.calls = nil }

// fakeSender records outbound events and optionally fails sends.
type fakeSender struct {
	events []protocol.Event
	err    error
}

func (s *fakeSender) Send(ev protocol.Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, ev)
	return nil
}

// newTestEngine wires an engine to a recorder UI, a fake sender, and a
// simulated clock starting at epoch. The returned advance function moves the
// clock forward.
func newTestEngine(username string) (*Engine, *fakeSender, *recorderUI, func(d time.Duration)) {
	sender := &fakeSender{}
	ui := &recorderUI{}
	engine := NewEngine(username, sender, ui, ui)

	now := time.Unix(0, 0)
	engine.now = func() time.Time { return now }
	advance := func(d time.Duration) { now = now.Add(d) }

	return engine, sender, ui, advance
}
