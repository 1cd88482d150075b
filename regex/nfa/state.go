/*
Package nfa compiles a regex.Pattern into a Thompson-construction NFA and
simulates it over one input rune at a time with epsilon-closure over
Dummy states.

States own their forward edges strongly; the one place the graph would
otherwise form a reference cycle is the back-edge a `*` repeat installs
from the end of its body to its own entry point. Go's garbage collector
is cycle-safe, so a strong back-edge would not leak memory the way it
would in a reference-counted runtime — but the spec models ownership
explicitly (forward spine strong, back-edges non-owning) to keep the
graph's lifetime obviously rooted at its single Start state, and that
shape is reproduced here using the stdlib weak package (Go 1.24):
back-edges are weak.Pointer[State] values that get resolved at traversal
time, with a failed resolution treated as a (defensively handled, never
expected) dead edge.
*/
package nfa

import (
	"sync/atomic"
	"weak"
)

// Kind tags the role a State plays during simulation.
type Kind int

const (
	KindLiteral Kind = iota
	KindSet
	KindWildcard
	KindStart
	KindAccept
	KindDummy
)

// stateIDCounter is the only process-wide mutable state in this package:
// a monotonic id generator used solely for state equality/hashing during
// epsilon-closure traversal (see DESIGN.md).
var stateIDCounter atomic.Uint64

// edge is one outgoing transition from a State, either strongly owned
// (the common case, used for the whole forward spine of the graph) or
// weakly held (used only for `*` back-edges).
type edge struct {
	strong *State
	weak   weak.Pointer[State]
	isWeak bool
}

// State is one node of the NFA. Literal/Set/Wildcard states consume one
// input rune when accepts reports true for it; Start/Accept/Dummy states
// never consume input and exist purely for control flow.
type State struct {
	id      uint64
	kind    Kind
	literal rune
	set     map[rune]struct{}

	successors []edge
}

func newState(kind Kind) *State {
	return &State{id: stateIDCounter.Add(1), kind: kind}
}

// NewLiteral returns a state that accepts exactly c.
func NewLiteral(c rune) *State {
	s := newState(KindLiteral)
	s.literal = c
	return s
}

// NewSet returns a state that accepts any rune in members.
func NewSet(members []rune) *State {
	s := newState(KindSet)
	s.set = make(map[rune]struct{}, len(members))
	for _, m := range members {
		s.set[m] = struct{}{}
	}
	return s
}

// NewWildcard returns a state that accepts any single rune.
func NewWildcard() *State {
	return newState(KindWildcard)
}

// NewDummy returns an epsilon (control-flow only) state.
func NewDummy() *State {
	return newState(KindDummy)
}

// ID returns the state's stable identity, used for closure deduplication.
func (s *State) ID() uint64 { return s.id }

// Kind reports which role s plays.
func (s *State) Kind() Kind { return s.kind }

// Accepts reports whether s consumes c. Start and Dummy never appear in
// a live set, and Accept does appear there (it is how Graph.Accepts
// detects a match) but consumes nothing further; all three report false
// rather than panicking.
func (s *State) Accepts(c rune) bool {
	switch s.kind {
	case KindLiteral:
		return s.literal == c
	case KindSet:
		_, ok := s.set[c]
		return ok
	case KindWildcard:
		return true
	default:
		return false
	}
}

// AddStrongSuccessor adds a strongly owned forward edge from s to t.
func (s *State) AddStrongSuccessor(t *State) {
	s.successors = append(s.successors, edge{strong: t})
}

// AddWeakSuccessor adds a weakly held back-edge from s to t. t must be
// kept alive by some other strong path from the graph's Start, which is
// always true for the `*` construction this is used for (see compile.go).
func (s *State) AddWeakSuccessor(t *State) {
	s.successors = append(s.successors, edge{weak: weak.Make(t), isWeak: true})
}

// Successors resolves s's outgoing edges, silently dropping any weak
// edge whose target has been collected. That should never happen in
// practice (see the package doc), but dropping rather than panicking
// matches the spec's "dead weak reference... skipped silently" error
// kind.
func (s *State) Successors() []*State {
	out := make([]*State, 0, len(s.successors))
	for _, e := range s.successors {
		if e.isWeak {
			if v := e.weak.Value(); v != nil {
				out = append(out, v)
			}
			continue
		}
		out = append(out, e.strong)
	}
	return out
}
