/*
Package wordlist is the engine's façade: it owns the load path from a
raw dictionary file down to a frozen trie, and exposes the four query
operations (regex search and anagram, each in a collecting and a
streaming-callback form) that package search's driver makes possible.

Wordlist itself carries no search logic; it normalizes input, drives
package trie's builder, compiles patterns via package regex/nfa, and
wires the right search.Params into search.Run.
*/
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/pelanor/wordforge/alphabet"
	"github.com/pelanor/wordforge/regex/nfa"
	"github.com/pelanor/wordforge/search"
	"github.com/pelanor/wordforge/trie"
)

// progressEvery controls how often Load reports a progress line while
// scanning a large dictionary file, matching the original's periodic
// println! progress reporting.
const progressEvery = 100000

// Wordlist accumulates dictionary insertions and, once Build is called
// (directly, or implicitly by the first query), answers queries against
// an immutable trie. Querying before any words have been loaded and
// built is allowed — it is simply an empty dictionary — but querying
// after a Builder that was never wired to this Wordlist's Build path
// would be a caller error; Wordlist itself always freezes on first use.
type Wordlist struct {
	builder *trie.Builder
	frozen  *trie.Trie
}

// New returns an empty Wordlist ready to accept Load calls.
func New() *Wordlist {
	return &Wordlist{builder: trie.NewBuilder()}
}

// Load scans r line by line, extracting a word and frequency from each
// line via parseLine under format, normalizing the word to the engine's
// alphabet (see alphabet.Normalize), and inserting it into the
// dictionary being built. Lines parseLine rejects, and lines whose
// normalized word is empty, are counted as skipped rather than failing
// the whole load. Load panics if it inserts a word after Build.
func (w *Wordlist) Load(r io.Reader, format FileFormat, parseLine LineParser) (loaded, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		word, freq, ok := parseLine(scanner.Text(), format)
		if !ok {
			skipped++
			continue
		}
		normalized := alphabet.Normalize(word)
		if normalized == "" {
			skipped++
			continue
		}
		w.builder.AddWithFreq(normalized, freq)
		loaded++
		if loaded%progressEvery == 0 {
			log.Printf("wordlist: loaded %d words (last: %s)", loaded, normalized)
		}
	}
	if err := scanner.Err(); err != nil {
		return loaded, skipped, fmt.Errorf("wordlist: reading dictionary: %w", err)
	}
	log.Printf("wordlist: finished loading %d words (%d skipped)", loaded, skipped)
	return loaded, skipped, nil
}

// Build freezes the dictionary accumulated so far. It is idempotent,
// mirroring trie.Builder.Build, and is called implicitly by the first
// query if a caller never calls it directly.
func (w *Wordlist) Build() {
	w.frozen = w.builder.Build()
}

func (w *Wordlist) root() *trie.Node {
	if w.frozen == nil {
		w.Build()
	}
	return w.frozen.Root
}

// Contains reports whether word, normalized, was loaded.
func (w *Wordlist) Contains(word string) bool {
	if w.frozen == nil {
		w.Build()
	}
	return w.frozen.Contains(alphabet.Normalize(word))
}

// SearchCallback compiles pattern against the engine's regex dialect and
// streams every accepted result to cb as the search driver finds it.
// cfg.MaxResults, if set, is advisory only here: the driver may explore
// a handful of results past the count at which cb first returns true
// before every in-flight worker observes the halt (see search.Run).
func (w *Wordlist) SearchCallback(pattern string, cfg search.Config, cb search.Callback) error {
	graph, err := nfa.CompilePattern(pattern)
	if err != nil {
		return fmt.Errorf("wordlist: compiling search pattern %q: %w", pattern, err)
	}
	search.Run(w.root(), search.NewRegexCursor(graph), search.RegexParams(graph), cfg, cb)
	return nil
}

// Search compiles pattern and collects every accepted result, hard-capped
// at cfg.MaxResults if set — the collecting form's enforcement of
// max_results differs from SearchCallback's advisory-only treatment.
func (w *Wordlist) Search(pattern string, cfg search.Config) ([]string, error) {
	var results []string
	err := w.SearchCallback(pattern, cfg, collector(&results, cfg.MaxResults))
	if err != nil {
		return nil, err
	}
	return results, nil
}

// AnagramCallback streams every composition of letters (normalized) that
// exactly exhausts its letter multiset to cb, in approximately
// best-first order.
func (w *Wordlist) AnagramCallback(letters string, cfg search.Config, cb search.Callback) {
	normalized := alphabet.Normalize(letters)
	cursor := search.NewAnagramCursor(normalized)
	search.Run(w.root(), cursor, search.AnagramParams(), cfg, cb)
}

// Anagram collects every composition of letters that exactly exhausts
// its letter multiset, hard-capped at cfg.MaxResults if set.
func (w *Wordlist) Anagram(letters string, cfg search.Config) []string {
	var results []string
	w.AnagramCallback(letters, cfg, collector(&results, cfg.MaxResults))
	return results
}

// collector returns a search.Callback that appends every result to out,
// halting once len(*out) reaches max (if max is non-nil) and dropping any
// result still delivered by in-flight workers after that — the
// collecting query variants' hard cap on max_results.
func collector(out *[]string, max *int) search.Callback {
	return func(result string, _ search.Config) bool {
		if max != nil && len(*out) >= *max {
			return true
		}
		*out = append(*out, result)
		if max != nil && len(*out) >= *max {
			return true
		}
		return false
	}
}
