package search_test

import (
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/pelanor/wordforge/regex/nfa"
	"github.com/pelanor/wordforge/search"
	"github.com/pelanor/wordforge/trie"
	"github.com/stretchr/testify/require"
)

func seedTrie(t *testing.T) *trie.Trie {
	t.Helper()
	b := trie.NewBuilder()
	b.AddWithFreq("HELLO", 1)
	b.AddWithFreq("HELP", 1)
	b.AddWithFreq("GOODBYE", 1)
	b.AddWithFreq("GOOD", 1)
	b.AddWithFreq("BYE", 1)
	return b.Build()
}

func collectResults(t *testing.T, root *trie.Node, pattern string, cfg search.Config) []string {
	t.Helper()
	g, err := nfa.CompilePattern(pattern)
	require.NoError(t, err)

	var mu sync.Mutex
	var out []string
	search.Run(root, search.NewRegexCursor(g), search.RegexParams(g), cfg, func(result string, _ search.Config) bool {
		mu.Lock()
		out = append(out, result)
		mu.Unlock()
		return false
	})
	sort.Strings(out)
	return out
}

func TestSearchComposesMultiWordResult(t *testing.T) {
	tr := seedTrie(t)

	penalty := int64(50)
	cfg := search.DefaultConfig()
	cfg.SpacePenalty = &penalty
	cfg.SpacesAllowed = 3

	got := collectResults(t, tr.Root, "GOODBYE", cfg)
	require.Equal(t, []string{"GOOD BYE", "GOODBYE"}, got)
}

func TestSearchSingleWordOnlyWithoutSpacePenalty(t *testing.T) {
	tr := seedTrie(t)
	cfg := search.DefaultConfig()

	got := collectResults(t, tr.Root, "GOODBYE", cfg)
	require.Equal(t, []string{"GOODBYE"}, got)
}

func TestSearchWildcardAndAlternation(t *testing.T) {
	tr := seedTrie(t)
	cfg := search.DefaultConfig()

	got := collectResults(t, tr.Root, "H.L*(O|P)", cfg)
	require.Equal(t, []string{"HELLO", "HELP"}, got)
}

func TestSearchEarlyTerminationCallback(t *testing.T) {
	tr := seedTrie(t)
	penalty := int64(50)
	cfg := search.DefaultConfig()
	cfg.SpacePenalty = &penalty
	cfg.SpacesAllowed = 3

	g, err := nfa.CompilePattern("GOODBYE")
	require.NoError(t, err)

	var mu sync.Mutex
	var invocations int
	search.Run(tr.Root, search.NewRegexCursor(g), search.RegexParams(g), cfg, func(string, search.Config) bool {
		mu.Lock()
		defer mu.Unlock()
		invocations++
		return true
	})

	// Halting on the first accepted result clears the queue, but with
	// MaxResults unset the workers do not consult the done flag, so a
	// worker already in flight on the other branch can still push its
	// successors and deliver one more result; with only two possible
	// results here, invocations can be 1 or 2, never more and never 0.
	require.GreaterOrEqual(t, invocations, 1)
	require.LessOrEqual(t, invocations, 2)
}

func TestAnagramExactMultiset(t *testing.T) {
	tr := seedTrie(t)
	cfg := search.DefaultConfig()

	cursor := search.NewAnagramCursor("OLEHL")
	var mu sync.Mutex
	var out []string
	search.Run(tr.Root, cursor, search.AnagramParams(), cfg, func(result string, _ search.Config) bool {
		mu.Lock()
		out = append(out, result)
		mu.Unlock()
		return false
	})
	require.Equal(t, []string{"HELLO"}, out)
}

func TestAnagramNoMatch(t *testing.T) {
	tr := seedTrie(t)
	cfg := search.DefaultConfig()

	cursor := search.NewAnagramCursor("DOG")
	var out []string
	search.Run(tr.Root, cursor, search.AnagramParams(), cfg, func(result string, _ search.Config) bool {
		out = append(out, result)
		return false
	})
	require.Empty(t, out)
}

func TestAnagramLetterMultisetMustMatchExactly(t *testing.T) {
	tr := seedTrie(t)
	cfg := search.DefaultConfig()

	cursor := search.NewAnagramCursor("OOGD")
	var out []string
	search.Run(tr.Root, cursor, search.AnagramParams(), cfg, func(result string, _ search.Config) bool {
		out = append(out, result)
		return false
	})
	require.Equal(t, []string{"GOOD"}, out)
}

// allDotsResults unions the results of a fixed-length all-dots pattern
// (see nfa.TestAllDotsMatchesAnyFixedLengthWord) over every length up to
// maxLen, since the dialect has no "match anything of any length" idiom
// (`.*` is rejected: `*` only suffixes a literal, set or group, never a
// bare wildcard — see regex/parse.go's parseModifierAcceptor).
func allDotsResults(t *testing.T, root *trie.Node, maxLen int, cfg search.Config) []string {
	t.Helper()
	var out []string
	for n := 1; n <= maxLen; n++ {
		out = append(out, collectResults(t, root, strings.Repeat(".", n), cfg)...)
	}
	sort.Strings(out)
	return out
}

func TestPruneFreqSubsetsUnprunedResults(t *testing.T) {
	b := trie.NewBuilder()
	b.AddWithFreq("GOOD", 1)
	b.AddWithFreq("GOODBYE", 1)
	b.AddWithFreq("GOODNESS", 50)
	tr := b.Build()

	const maxLen = len("GOODNESS")
	unpruned := allDotsResults(t, tr.Root, maxLen, search.DefaultConfig())

	cfg := search.DefaultConfig()
	cfg.PruneFreq = 10
	pruned := allDotsResults(t, tr.Root, maxLen, cfg)

	prunedSet := make(map[string]bool, len(pruned))
	for _, w := range pruned {
		prunedSet[w] = true
	}
	for w := range prunedSet {
		require.Contains(t, unpruned, w)
	}
	require.Contains(t, pruned, "GOODNESS")
}
