package models

import (
	"image"
	"sort"
)

// SessionState gathers the mutable progress of one build attempt besides the
// step counter: which parts are locked, which slots are taken and whether the
// last drop must snap back.
type SessionState struct {
	locked   map[string]struct{}
	occupied map[image.Point]string
	reset    bool
}

// NewSessionState creates a state with the given ids already locked
func NewSessionState(fixed ...string) *SessionState {
	s := &SessionState{
		locked:   make(map[string]struct{}),
		occupied: make(map[image.Point]string),
	}
	for _, id := range fixed {
		s.Lock(id)
	}
	return s
}

// DefaultSessionState locks the case and the window background
func DefaultSessionState() *SessionState {
	return NewSessionState(CaseID, BackgroundID)
}

// Lock adds id to the locked set
func (s *SessionState) Lock(id string) {
	s.locked[id] = struct{}{}
}

// IsLocked reports whether id can no longer be dragged
func (s *SessionState) IsLocked(id string) bool {
	_, ok := s.locked[id]
	return ok
}

// Locked returns the sorted locked ids
func (s *SessionState) Locked() []string {
	ids := make([]string, 0, len(s.locked))
	for id := range s.locked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Occupy records that id now sits at the snapped position pos
func (s *SessionState) Occupy(pos image.Point, id string) {
	s.occupied[pos] = id
}

// Occupant returns the id placed at pos, if any
func (s *SessionState) Occupant(pos image.Point) (string, bool) {
	id, ok := s.occupied[pos]
	return id, ok
}

// RequestReset marks the last dropped part to be returned to its origin
func (s *SessionState) RequestReset() {
	s.reset = true
}

// ConsumeReset returns the reset flag and clears it
func (s *SessionState) ConsumeReset() bool {
	r := s.reset
	s.reset = false
	return r
}
