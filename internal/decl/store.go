package decl

import (
	"fmt"

	"fortio.org/safecast"
)

// Store keeps every declaration of one translation unit in a compact arena
// and maintains the ordered record of top-level declarations.
//
// The record list only grows. Graph construction may materialize and record
// more declarations while earlier indices are being traversed, so traversal
// must go by index (RecordedLen/RecordedAt), never by a snapshot of the
// slice.
type Store struct {
	data     []Decl // index 0 reserved for NoID
	recorded []ID
	seen     map[ID]struct{}
}

// NewStore creates a store with an optional capacity hint.
func NewStore(capacity uint32) *Store {
	if capacity == 0 {
		capacity = 64
	}
	return &Store{
		data:     make([]Decl, 1, capacity+1),
		recorded: make([]ID, 0, capacity),
		seen:     make(map[ID]struct{}, capacity),
	}
}

// New allocates a declaration in the arena and returns its ID.
// Allocation does not record; top-level declarations are recorded separately.
func (s *Store) New(d Decl) ID {
	value, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("decl arena overflow: %w", err))
	}
	id := ID(value)
	s.data = append(s.data, d)
	return id
}

// Get returns the declaration or nil for an invalid ID.
func (s *Store) Get(id ID) *Decl {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len reports the number of allocated declarations excluding the sentinel.
func (s *Store) Len() int { return len(s.data) - 1 }

// Record appends a declaration to the top-level sequence.
//
// Container-owned methods are skipped here: both the per-declaration callback
// and the container callback can fire for them, and the container callback is
// the one that records. Returns false when nothing was appended.
func (s *Store) Record(id ID) bool {
	d := s.Get(id)
	if d == nil {
		return false
	}
	if d.Kind == KindMethod && d.Container {
		return false
	}
	return s.record(id)
}

// RecordContainer records the methods of a container grouping, deduplicating
// against double-counting when a method was already seen individually.
func (s *Store) RecordContainer(methods ...ID) {
	for _, id := range methods {
		if s.Get(id) == nil {
			continue
		}
		s.record(id)
	}
}

func (s *Store) record(id ID) bool {
	if _, dup := s.seen[id]; dup {
		return false
	}
	s.seen[id] = struct{}{}
	s.recorded = append(s.recorded, id)
	return true
}

// RecordedLen reports the current length of the top-level sequence.
// Callers that need a pre-traversal snapshot capture this value themselves.
func (s *Store) RecordedLen() int { return len(s.recorded) }

// RecordedAt gives stable random access into the top-level sequence.
func (s *Store) RecordedAt(i int) ID {
	if i < 0 || i >= len(s.recorded) {
		return NoID
	}
	return s.recorded[i]
}

// Source is the frontend boundary for resolving call edges. Callees returns
// the statically resolvable callees of a declaration's body. Resolving may
// materialize declarations that were not yet forced into memory; the
// implementation must allocate and Record them in the store so the growable
// index-based traversal observes them.
type Source interface {
	Callees(store *Store, id ID) []ID
}
