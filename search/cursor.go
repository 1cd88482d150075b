package search

import (
	"github.com/pelanor/wordforge/regex/nfa"
	"github.com/pelanor/wordforge/trie"
)

// Params supplies the query-specific behavior the driver is polymorphic
// over: a starting-cursor type C, how to advance it by one letter, how
// to test acceptance, and how to score a candidate node. Package search
// ships the two concrete instantiations this engine needs — regex and
// anagram — but nothing about Run itself depends on either.
type Params[C any] struct {
	// Accept reports whether cursor currently represents a complete
	// match (e.g. the NFA live-set contains Accept, or every letter
	// count has reached zero).
	Accept func(cursor C) bool
	// KeepGoing advances cursor by one letter, returning the new cursor
	// and true, or the zero value and false if the branch is dead.
	KeepGoing func(cursor C, letter rune) (C, bool)
	// Score orders queue items; higher pops first. It is evaluated
	// against the state *before* the transition being scored is
	// applied, as in the original engine design.
	Score func(node *trie.Node, state State) int64
}

// defaultScore is the score function both regex and anagram queries use:
// total length explored times subtree weight, rewarding deep
// exploration into dense (high-weight) subtrees.
func defaultScore(node *trie.Node, state State) int64 {
	return int64(state.TotalLen) * int64(node.Weight)
}

// RegexCursor is the live-set of an NFA simulation in progress.
type RegexCursor struct {
	graph *nfa.Graph
	live  []*nfa.State
}

// NewRegexCursor seeds a RegexCursor at g's starting states.
func NewRegexCursor(g *nfa.Graph) RegexCursor {
	return RegexCursor{graph: g, live: g.StartingStates()}
}

// RegexParams returns the Params driving a regex search against g.
func RegexParams(g *nfa.Graph) Params[RegexCursor] {
	return Params[RegexCursor]{
		Accept: func(c RegexCursor) bool {
			return c.graph.Accepts(c.live)
		},
		KeepGoing: func(c RegexCursor, letter rune) (RegexCursor, bool) {
			next := c.graph.Advance(c.live, letter)
			if len(next) == 0 {
				return RegexCursor{}, false
			}
			return RegexCursor{graph: c.graph, live: next}, true
		},
		Score: defaultScore,
	}
}

// AnagramCursor tracks how many of each letter remain to be placed.
type AnagramCursor struct {
	remaining map[rune]int
}

// NewAnagramCursor seeds an AnagramCursor from the given letters (which
// should already be normalized to the alphabet).
func NewAnagramCursor(letters string) AnagramCursor {
	counts := make(map[rune]int)
	for _, c := range letters {
		counts[c]++
	}
	return AnagramCursor{remaining: counts}
}

// AnagramParams returns the Params driving an anagram search.
func AnagramParams() Params[AnagramCursor] {
	return Params[AnagramCursor]{
		Accept: func(c AnagramCursor) bool {
			for _, n := range c.remaining {
				if n != 0 {
					return false
				}
			}
			return true
		},
		KeepGoing: func(c AnagramCursor, letter rune) (AnagramCursor, bool) {
			if c.remaining[letter] <= 0 {
				return AnagramCursor{}, false
			}
			clone := make(map[rune]int, len(c.remaining))
			for k, v := range c.remaining {
				clone[k] = v
			}
			clone[letter]--
			return AnagramCursor{remaining: clone}, true
		},
		Score: defaultScore,
	}
}
