// Package analytics turns raw text into token frequency distributions.
package analytics

import (
	"sort"
	"strings"

	"github.com/textkit/freqdist/pkg/freqdist"
)

// Analytics tokenizes text and counts token occurrences, skipping the
// stopwords of its configured language.
type Analytics struct {
	stopwords map[string]struct{}
}

// New returns an Analytics for the given ISO-639-1 language code. Unknown
// codes fall back to English. Extra words are added to the stopword set.
func New(lang string, extra ...string) *Analytics {
	base := stopwordSet(lang)
	set := make(map[string]struct{}, len(base)+len(extra))
	for w := range base {
		set[w] = struct{}{}
	}
	for _, w := range extra {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Analytics{stopwords: set}
}

// IsStopword reports whether word is filtered out during counting.
func (a *Analytics) IsStopword(word string) bool {
	_, ok := a.stopwords[strings.ToLower(word)]
	return ok
}

// WordFrequency tokenizes text and returns the distribution of token counts.
// Tokens are lower-cased and trimmed of surrounding punctuation; stopwords
// and tokens that are empty after cleaning are skipped. The token count of
// the input is an upper bound on the distinct-key count, so it doubles as
// the capacity hint.
func (a *Analytics) WordFrequency(text string) *freqdist.Distribution[string] {
	words := strings.Fields(strings.ToLower(text)) // handles repeated spaces and newlines
	dist := freqdist.NewWithCapacity[string](len(words))

	for _, word := range words {
		word = strings.TrimFunc(word, func(r rune) bool {
			// Keep only lowercase letters and digits at the edges
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})
		if word == "" {
			continue
		}
		if _, ok := a.stopwords[word]; ok {
			continue
		}
		dist.Insert(word)
	}

	return dist
}

// TopNWords returns the n most frequent tokens in text, most frequent first.
// Ties break alphabetically.
func (a *Analytics) TopNWords(text string, n int) []string {
	dist := a.WordFrequency(text)

	type wordCount struct {
		word  string
		count uint64
	}
	counts := make([]wordCount, 0, dist.Len())
	for word, count := range dist.All() {
		counts = append(counts, wordCount{word, count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].word < counts[j].word
	})

	limit := min(n, len(counts))
	topN := make([]string, limit)
	for i := range limit {
		topN[i] = counts[i].word
	}
	return topN
}
