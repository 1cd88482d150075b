package trie

import (
	"fmt"

	"github.com/pelanor/wordforge/alphabet"
)

// builderNode is a single mutable node in the arena a Builder accumulates
// insertions into. It exists only during construction; Build discards it
// in favor of the immutable Node tree.
type builderNode struct {
	letter     rune
	depth      uint32
	path       string
	isTerminal bool
	freq       uint64
	weight     uint64
	children   [alphabet.Size]*builderNode
}

// Builder accumulates word insertions into a mutable tree and, exactly
// once, freezes that tree into an immutable Trie via Build.
//
// A Builder is not safe for concurrent use; dictionaries are loaded by a
// single producer (see package wordlist), matching the single-shot
// builder/freeze split in the data model this trie implements.
type Builder struct {
	root   *builderNode
	built  bool
	frozen *Trie
}

// NewBuilder returns an empty Builder ready to accept insertions.
func NewBuilder() *Builder {
	return &Builder{root: &builderNode{}}
}

// Add inserts word with frequency 1. Equivalent to AddWithFreq(word, 1).
//
// Complexity: O(len(word))
func (b *Builder) Add(word string) {
	b.AddWithFreq(word, 1)
}

// AddWithFreq walks from the root, creating nodes on demand, and marks
// the terminal node for word with an added frequency of f. Every rune of
// word must be a member of the alphabet; callers normalize first (see
// alphabet.Normalize). Calling AddWithFreq after Build is a programming
// error and panics.
//
// Complexity: O(len(word))
func (b *Builder) AddWithFreq(word string, f uint64) {
	if b.built {
		panic("trie: AddWithFreq called on a Builder that has already been Build-frozen")
	}
	current := b.root
	for _, c := range word {
		idx, ok := alphabet.Index(c)
		if !ok {
			panic(fmt.Sprintf("trie: character %q is not a member of the alphabet; normalize input before inserting", c))
		}
		child := current.children[idx]
		if child == nil {
			child = &builderNode{
				letter: c,
				depth:  current.depth + 1,
				path:   current.path + string(c),
			}
			current.children[idx] = child
		}
		current = child
	}
	current.isTerminal = true
	current.freq += f
}

// Build computes Weight bottom-up, precomputes NextChild for every node,
// and materializes the immutable Trie. Build is idempotent: a second
// call returns the same Trie handle without recomputing anything. What
// is a programming error is calling AddWithFreq after Build, which
// panics rather than silently mutating a tree callers may already be
// querying.
//
// Complexity: O(#nodes) the first time, a single post-order decoration
// pass plus a single freezing pass; O(1) on every call thereafter.
func (b *Builder) Build() *Trie {
	if b.built {
		return b.frozen
	}
	b.built = true
	decorate(b.root)
	b.frozen = &Trie{Root: freeze(b.root)}
	return b.frozen
}

// decorate computes weight = freq + sum(child.weight) for n and its
// entire subtree, returning n's own weight.
func decorate(n *builderNode) uint64 {
	n.weight = n.freq
	for _, c := range n.children {
		if c != nil {
			n.weight += decorate(c)
		}
	}
	return n.weight
}

// freeze copies a builderNode subtree into its immutable Node form,
// computing NextChild along the way.
func freeze(n *builderNode) *Node {
	node := &Node{
		Letter:     n.letter,
		Depth:      n.depth,
		Path:       n.path,
		IsTerminal: n.isTerminal,
		Freq:       n.freq,
		Weight:     n.weight,
	}
	for i, c := range n.children {
		if c != nil {
			node.Children[i] = freeze(c)
		}
	}
	buildNextChild(node)
	return node
}

// buildNextChild fills node.NextChild so that NextChild[i] is the
// smallest j > i with Children[j] present, or -1 if there is none. A
// single backward pass suffices: next tracks the smallest present slot
// seen so far (to the right of the current position).
func buildNextChild(node *Node) {
	next := -1
	for i := alphabet.Size - 1; i >= 0; i-- {
		node.NextChild[i] = next
		if node.Children[i] != nil {
			next = i
		}
	}
}
