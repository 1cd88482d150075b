package search

import "github.com/pelanor/wordforge/trie"

// State accompanies every queue item and tracks enough bookkeeping to
// compose a final result string and to score a candidate node without
// re-walking any part of the trie.
type State struct {
	// NumSpaces is the number of word boundaries inserted so far.
	NumSpaces int
	// CurrentWordLen is the number of letters consumed in the
	// in-progress word.
	CurrentWordLen int
	// TotalLen is the number of letters consumed since the root of the
	// first word.
	TotalLen int
	// PrevWords holds the completed words in composition order; joining
	// their Path fields with single spaces (and appending the current
	// terminal's Path) produces the result string.
	PrevWords []*trie.Node
	// PrevPenalty is the running score deduction accumulated from prior
	// spaces and from the negative Freq of prior accepted words.
	PrevPenalty int64
}

// SameWord returns a copy of s advanced by one letter within the current
// word. PrevWords is copied (not aliased) so that sibling branches
// explored concurrently from the same parent state never observe each
// other's mutations.
func (s State) SameWord() State {
	n := s
	n.CurrentWordLen++
	n.TotalLen++
	n.PrevWords = clonePrevWords(s.PrevWords)
	return n
}

// NewWord returns a copy of s that ends the current word at node,
// records it in PrevWords, and resets CurrentWordLen to begin a fresh
// word. cfg.SpacePenalty must be set; callers only call NewWord from the
// driver's "reset to root" branch, which is itself gated on that.
func (s State) NewWord(node *trie.Node, cfg Config) State {
	n := s
	n.PrevWords = append(clonePrevWords(s.PrevWords), node)
	n.NumSpaces++
	n.CurrentWordLen = 0
	n.PrevPenalty += *cfg.SpacePenalty - int64(node.Freq)
	return n
}

func clonePrevWords(words []*trie.Node) []*trie.Node {
	out := make([]*trie.Node, len(words))
	copy(out, words)
	return out
}
