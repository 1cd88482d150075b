package nfa

import "github.com/pelanor/wordforge/set"

// Graph is a compiled NFA: a single Start state (reached by nothing) and
// a single Accept state (reaching nothing), with everything else strongly
// reachable from Start along the forward spine built by Compile.
type Graph struct {
	start  *State
	accept *State
}

// StartingStates returns the epsilon-closure of the graph's Start state:
// the live set before any input has been consumed.
//
// Complexity: O(#states) worst case.
func (g *Graph) StartingStates() []*State {
	seen := set.NewUnorderedSet()
	seen.InsertIfAbsent(g.start.ID())
	return closeSuccessors(g.start, seen)
}

// Advance consumes one rune c against the current live set, returning the
// new live set (already epsilon-closed). An empty result means the
// pattern cannot match any string with this prefix.
//
// Complexity: O(#live states * branching factor).
func (g *Graph) Advance(live []*State, c rune) []*State {
	seen := set.NewUnorderedSet()
	var next []*State
	for _, s := range live {
		if !s.Accepts(c) {
			continue
		}
		for _, succ := range s.Successors() {
			if !seen.InsertIfAbsent(succ.ID()) {
				continue
			}
			if succ.Kind() == KindDummy {
				next = append(next, closeSuccessors(succ, seen)...)
			} else {
				next = append(next, succ)
			}
		}
	}
	return next
}

// Accepts reports whether live contains the Accept state, i.e. whether
// the input consumed so far is a complete match.
//
// Complexity: O(#live states).
func (g *Graph) Accepts(live []*State) bool {
	for _, s := range live {
		if s.Kind() == KindAccept {
			return true
		}
	}
	return false
}

// closeSuccessors returns the non-Dummy states reachable from x by
// following a chain of zero or more Dummy successors, not including x
// itself. seen guards against revisiting a state already processed in
// this closure pass, which both deduplicates results and prevents
// infinite recursion through a `*` loop's back-edge.
func closeSuccessors(x *State, seen *set.UnorderedSet) []*State {
	var out []*State
	for _, succ := range x.Successors() {
		if !seen.InsertIfAbsent(succ.ID()) {
			continue
		}
		if succ.Kind() == KindDummy {
			out = append(out, closeSuccessors(succ, seen)...)
		} else {
			out = append(out, succ)
		}
	}
	return out
}
