/*
Package alphabet defines the fixed 27-symbol alphabet the rest of the
engine is built around: the 26 Latin letters plus the space character,
used throughout trie, regex and search as a dense child-slot index.

Folding arbitrary input text down to this alphabet (case folding plus
dropping anything that isn't a letter or a space) is the only
responsibility of Normalize; everything else in the module consumes
already-normalized strings.
*/
package alphabet

import "strings"

// Size is the number of symbols in the alphabet: 'A'..'Z' plus space.
const Size = 27

// spaceIndex is the slot assigned to the space character, one past 'Z'.
const spaceIndex = Size - 1

// Index maps a symbol to its child-slot index 0..26, or reports false if
// c is not a member of the alphabet.
//
// Complexity: O(1)
func Index(c rune) (int, bool) {
	switch {
	case c == ' ':
		return spaceIndex, true
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	default:
		return 0, false
	}
}

// Symbol is the inverse of Index: it returns the alphabet member at the
// given slot. It panics if idx is out of range, since every caller in
// this module only ever indexes slots it has itself produced.
//
// Complexity: O(1)
func Symbol(idx int) rune {
	if idx == spaceIndex {
		return ' '
	}
	if idx < 0 || idx >= spaceIndex {
		panic("alphabet: slot index out of range")
	}
	return rune('A' + idx)
}

// Normalize upper-cases s and drops every rune that is not a member of
// the alphabet, folding arbitrary input text down to the 27-symbol
// alphabet this module operates on.
//
// Complexity: O(len(s))
func Normalize(s string) string {
	upper := strings.ToUpper(s)
	var b strings.Builder
	b.Grow(len(upper))
	for _, c := range upper {
		if _, ok := Index(c); ok {
			b.WriteRune(c)
		}
	}
	return b.String()
}
