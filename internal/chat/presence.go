package chat

import "sort"

// Roster tracks the online/typing status of other users in the current
// room. The local user never enters the roster; presence is derived from
// server broadcasts and is not authoritative.
type Roster struct {
	self  string
	users map[string]string
}

// NewRoster creates an empty roster for the local user self.
func NewRoster(self string) *Roster {
	return &Roster{
		self:  self,
		users: make(map[string]string),
	}
}

// Replace rebuilds the roster from a full users_online payload. Entries for
// the local user are skipped. Replace is idempotent for identical payloads.
func (r *Roster) Replace(users map[string]string) {
	r.users = make(map[string]string, len(users))
	for username, status := range users {
		if username == r.self {
			continue
		}
		if status == "" {
			status = StatusOnline
		}
		r.users[username] = status
	}
}

// Add records username as online. It reports false for the local user and
// for users already present.
func (r *Roster) Add(username string) bool {
	if username == r.self {
		return false
	}
	if _, ok := r.users[username]; ok {
		return false
	}
	r.users[username] = StatusOnline
	return true
}

// Remove deletes username from the roster. It reports false for the local
// user and for unknown users.
func (r *Roster) Remove(username string) bool {
	if username == r.self {
		return false
	}
	if _, ok := r.users[username]; !ok {
		return false
	}
	delete(r.users, username)
	return true
}

// SetStatus updates username's status, adding the user if unknown. The local
// user is ignored.
func (r *Roster) SetStatus(username, status string) {
	if username == r.self {
		return
	}
	r.users[username] = status
}

// Status returns username's tracked status.
func (r *Roster) Status(username string) (string, bool) {
	status, ok := r.users[username]
	return status, ok
}

// Count returns the number of other users tracked as online.
func (r *Roster) Count() int { return len(r.users) }

// Usernames returns the tracked usernames in sorted order.
func (r *Roster) Usernames() []string {
	names := make([]string, 0, len(r.users))
	for username := range r.users {
		names = append(names, username)
	}
	sort.Strings(names)
	return names
}
