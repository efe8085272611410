// Package lookup drives word lookups against the dictionary and thesaurus.
package lookup

import "sync"

// State is the phase of the current lookup.
type State int

const (
	Idle State = iota
	Fetching
	Success
	SpellingSuggestions
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Success:
		return "success"
	case SpellingSuggestions:
		return "suggestions"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of the machine's state at one point in time.
type Snapshot struct {
	State       State
	Word        string
	Generation  uint64
	Result      *Result
	Suggestions []string
	Err         error
}

// Machine tracks one lookup at a time. Every Begin starts a new generation;
// completions carrying an older generation are ignored so a newer lookup
// always supersedes an older one.
type Machine struct {
	mu   sync.Mutex
	snap Snapshot
}

// Begin moves to Fetching for word and returns the new generation.
func (m *Machine) Begin(word string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	gen := m.snap.Generation + 1
	m.snap = Snapshot{State: Fetching, Word: word, Generation: gen}
	return gen
}

// Succeed records a result. It reports whether the transition was applied.
func (m *Machine) Succeed(gen uint64, result *Result) bool {
	return m.finish(gen, func(s *Snapshot) {
		s.State = Success
		s.Result = result
	})
}

// Suggest records spelling suggestions.
func (m *Machine) Suggest(gen uint64, words []string) bool {
	return m.finish(gen, func(s *Snapshot) {
		s.State = SpellingSuggestions
		s.Suggestions = words
	})
}

// Fail records an error.
func (m *Machine) Fail(gen uint64, err error) bool {
	return m.finish(gen, func(s *Snapshot) {
		s.State = Error
		s.Err = err
	})
}

// Reset returns to Idle. The generation counter keeps counting so that
// in-flight lookups started before the reset are ignored.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snap = Snapshot{State: Idle, Generation: m.snap.Generation + 1}
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

func (m *Machine) finish(gen uint64, apply func(*Snapshot)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snap.State != Fetching || m.snap.Generation != gen {
		return false
	}
	apply(&m.snap)
	return true
}
