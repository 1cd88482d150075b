// Command wordforge is a thin demonstration harness for package
// wordlist: load a dictionary file and run one regex or anagram query
// against it, printing results one per line. It carries no engine logic
// of its own.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pelanor/wordforge/search"
	"github.com/pelanor/wordforge/wordlist"
)

func main() {
	var (
		path          = flag.String("dict", "", "path to a dictionary file, one word per line (required)")
		delimiter     = flag.String("delimiter", "", "column delimiter; empty means the whole line is the word")
		wordColumn    = flag.Int("word-column", 0, "zero-based word column, when -delimiter is set")
		freqColumn    = flag.Int("freq-column", -1, "zero-based frequency column, when -delimiter is set (-1 means frequency 1)")
		regexPattern  = flag.String("regex", "", "regex pattern to search for")
		anagram       = flag.String("anagram", "", "letters to find anagram compositions of")
		maxResults    = flag.Int("max-results", 0, "cap on the number of results (0 means unbounded)")
		spacePenalty  = flag.Int64("space-penalty", -1, "per-space score penalty enabling multi-word results (-1 disables composition)")
		spacesAllowed = flag.Int("spaces-allowed", 0, "maximum word boundaries in one composed result")
		minWordLen    = flag.Int("min-word-len", 3, "minimum letters per word or word fragment")
		pruneFreq     = flag.Uint64("prune-freq", 0, "skip subtrees whose weight is below this, and words whose frequency does not exceed it")
	)
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "wordforge: -dict is required")
		os.Exit(2)
	}
	if *regexPattern == "" && *anagram == "" {
		fmt.Fprintln(os.Stderr, "wordforge: one of -regex or -anagram is required")
		os.Exit(2)
	}

	file, err := os.Open(*path)
	if err != nil {
		log.Fatalf("wordforge: opening dictionary: %v", err)
	}
	defer file.Close()

	format := wordlist.DefaultFileFormat()
	if *delimiter != "" {
		format = wordlist.DelimitedFileFormat((*delimiter)[0], *wordColumn, *freqColumn)
	}

	w := wordlist.New()
	loaded, skipped, err := w.Load(file, format, wordlist.DefaultLineParser)
	if err != nil {
		log.Fatalf("wordforge: loading dictionary: %v", err)
	}
	log.Printf("wordforge: loaded %d words, skipped %d", loaded, skipped)

	cfg := search.DefaultConfig()
	cfg.MinWordLen = *minWordLen
	cfg.PruneFreq = *pruneFreq
	if *maxResults > 0 {
		cfg.MaxResults = maxResults
	}
	if *spacePenalty >= 0 {
		cfg.SpacePenalty = spacePenalty
		cfg.SpacesAllowed = *spacesAllowed
	}

	printed := 0
	printResult := func(result string, _ search.Config) bool {
		if *maxResults > 0 && printed >= *maxResults {
			return true
		}
		fmt.Println(result)
		printed++
		return *maxResults > 0 && printed >= *maxResults
	}

	switch {
	case *regexPattern != "":
		if err := w.SearchCallback(*regexPattern, cfg, printResult); err != nil {
			log.Fatalf("wordforge: search: %v", err)
		}
	case *anagram != "":
		w.AnagramCallback(*anagram, cfg, printResult)
	}
}
