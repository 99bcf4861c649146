package order

import "time"

// StateChange is a single entry in an order's append-only state history.
// Entries are never rewritten: every committed transition appends exactly one,
// so the history length equals the number of completed transitions and the
// last entry's To always equals the current state.
type StateChange struct {
	From Status    `json:"from"`
	To   Status    `json:"to"`
	At   time.Time `json:"at"`
}

// MarshalText encodes the Status as its persisted name inside history JSON.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a persisted status name.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := StatusFromString(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
