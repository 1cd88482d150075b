/*
Package trie implements a character-indexed prefix tree specialized to
the 27-symbol alphabet (see package alphabet).

The package is split the way the underlying data genuinely splits in
two: a Builder that accumulates insertions into a tree of mutable nodes,
and an immutable Node tree produced once by Builder.Build. Search never
touches a Builder; it only ever walks the frozen Node tree, so reads
require no synchronization at all.

Every Node carries a fixed 27-slot child array, indexed by
alphabet.Index, rather than a map. Because real dictionaries are sparse
at most slots, each Node also carries a precomputed NextChild skip table
so callers can iterate the present children in O(1) per child instead of
scanning all 27 slots; see Node.Iterate.

Time Complexity:
  - Contains: O(len(word))
  - Iterate: O(1) amortized per present child

Space Complexity:
  - O(m*n) nodes in the worst case, where m is the number of inserted
    words and n is their average length, same as any prefix tree.
*/
package trie

import "github.com/pelanor/wordforge/alphabet"

// Node is one node of the frozen, read-only trie produced by
// Builder.Build. It has no interior mutability: every field is set once,
// at freeze time, and never changes afterward.
//
// Fields:
//   - Letter: the alphabet symbol this node represents; meaningless on
//     the root, whose Letter is the zero rune.
//   - Depth: 0 at the root, parent's Depth+1 otherwise.
//   - Path: the word prefix from (exclusive of) the root to this node;
//     len(Path) == int(Depth).
//   - IsTerminal: true iff some inserted word ends exactly here.
//   - Freq: the sum of frequencies of insertions that terminated here.
//   - Weight: Freq plus the sum of Weight over every child; a proxy for
//     how many (weighted) words live in this subtree.
//   - Children: child at slot i, if present, always has
//     alphabet.Index(child.Letter) == i.
//   - NextChild: for slot i, the smallest j > i with Children[j] != nil,
//     or -1 if there is none. Used by Iterate to skip absent slots.
type Node struct {
	Letter     rune
	Depth      uint32
	Path       string
	IsTerminal bool
	Freq       uint64
	Weight     uint64
	Children   [alphabet.Size]*Node
	NextChild  [alphabet.Size]int
}

// Trie is the immutable, query-ready form of the dictionary, produced by
// Builder.Build. The zero value is not usable; obtain one from a
// Builder.
type Trie struct {
	Root *Node
}

// Contains reports whether word was inserted (directly, not as a mere
// prefix) into the Builder that produced t. word must already be
// normalized to the alphabet; any character outside it is treated as a
// guaranteed miss rather than an error, since a dictionary built over
// the alphabet can never contain it.
//
// Complexity: O(len(word))
func (t *Trie) Contains(word string) bool {
	node := t.Root
	for _, c := range word {
		idx, ok := alphabet.Index(c)
		if !ok {
			return false
		}
		node = node.Children[idx]
		if node == nil {
			return false
		}
	}
	return node.IsTerminal
}

// Iterate returns a Cursor over n's present children, visited in
// ascending slot order. The cursor is single-pass and not restartable;
// obtain a fresh one per pass.
//
// Complexity: O(1) amortized per child, via NextChild.
func (n *Node) Iterate() *Cursor {
	idx := 0
	if n.Children[0] == nil {
		idx = n.NextChild[0]
	}
	return &Cursor{node: n, idx: idx}
}
