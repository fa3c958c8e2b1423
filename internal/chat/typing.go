package chat

import "time"

// Typing debounce intervals. A single poll timer checks for idleness rather
// than resetting a timer per keystroke, so rapid typing sends exactly one
// typing(true) per burst and one typing(false) after the idle threshold.
const (
	TypingPollInterval = 500 * time.Millisecond
	TypingIdleAfter    = 2500 * time.Millisecond
)

// Debouncer converts raw keystroke activity into throttled typing
// transitions. Its methods take an explicit now so tests can drive it with a
// simulated clock.
type Debouncer struct {
	typing       bool
	lastActivity time.Time
}

// NewDebouncer creates an idle debouncer.
func NewDebouncer() *Debouncer {
	return &Debouncer{}
}

// Activity records a keystroke at now. It reports true only on the
// idle-to-typing edge; while already typing it refreshes the activity
// timestamp without requesting another event.
func (d *Debouncer) Activity(now time.Time) bool {
	d.lastActivity = now
	if d.typing {
		return false
	}
	d.typing = true
	return true
}

// Poll checks for idleness at now. It reports true only on the
// typing-to-idle edge, once accumulated idle time exceeds TypingIdleAfter.
func (d *Debouncer) Poll(now time.Time) bool {
	if !d.typing {
		return false
	}
	if now.Sub(d.lastActivity) <= TypingIdleAfter {
		return false
	}
	d.typing = false
	return true
}

// IsTyping reports whether the local user is currently considered typing.
func (d *Debouncer) IsTyping() bool { return d.typing }
