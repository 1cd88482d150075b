/*
Package search implements the engine's best-first parallel search
driver: a worker pool that walks an immutable trie under an arbitrary
external cursor (an NFA live-set for regex queries, a remaining-letter
multiset for anagram queries), scoring nodes by subtree weight and
optionally composing multiple inserted words separated by a per-space
penalty.

The driver itself knows nothing about regex or anagrams; it is
parameterized by a Params value supplying KeepGoing, Accept and Score as
plain functions, exactly the "pair of closures plus a starting cursor"
polymorphism the engine's design favors over an interface hierarchy (see
DESIGN.md). The two concrete Params instantiations (regex and anagram)
live in this package's cursor.go; package wordlist wires them into Run.
*/
package search

// Config controls a single search call. The zero value is not a usable
// config: use DefaultConfig, which sets MinWordLen to the spec's default
// of 3.
type Config struct {
	// MaxResults caps the number of results a collecting query returns;
	// nil means unbounded. The driver itself does not enforce this cap
	// (see package wordlist's Search/Anagram vs SearchCallback/
	// AnagramCallback) — it is advisory for callback-based callers.
	MaxResults *int

	// MaxLength, if set, is an advisory cap a caller may apply to the
	// composed result string's length; the driver does not interpret it.
	MaxLength *int

	// SpacePenalty, if set, enables multi-word composition: each
	// completed word before the last adds *SpacePenalty to the running
	// penalty subtracted from subsequent scores. nil disables
	// composition entirely (spaces_allowed is then moot).
	SpacePenalty *int64

	// SpacesAllowed is the maximum number of word boundaries permitted
	// in one composed result. 0 means single-word results only.
	SpacesAllowed int

	// MinWordLen is the minimum number of letters a word (or word
	// fragment ending a composition) must have to be accepted as a
	// terminal or as a split point. Defaults to 3.
	MinWordLen int

	// PruneFreq skips any subtree whose Weight is below it, and any
	// terminal whose Freq does not exceed it.
	PruneFreq uint64
}

// DefaultConfig returns the engine's default single-word, unbounded
// search configuration, with MinWordLen set to 3 per the spec.
func DefaultConfig() Config {
	return Config{MinWordLen: 3}
}
