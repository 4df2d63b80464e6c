// Package mapreduce aggregates per-document token distributions into
// corpus-wide keyword rankings.
package mapreduce

import (
	"fmt"
	"sort"
	"strings"

	"github.com/textkit/freqdist/pkg/analytics"
	"github.com/textkit/freqdist/pkg/freqdist"
)

// Keyword is a ranked token with its aggregate count.
type Keyword struct {
	Word  string
	Count uint64
}

func (k Keyword) String() string {
	return fmt.Sprintf("%s:%d", k.Word, k.Count)
}

// Map generates the token distribution for a single document's content.
func Map(content string, a *analytics.Analytics) *freqdist.Distribution[string] {
	return a.WordFrequency(content)
}

// Reduce merges per-document distributions into a single aggregate.
func Reduce(intermediate []*freqdist.Distribution[string]) *freqdist.Distribution[string] {
	final := freqdist.New[string]()
	for _, dist := range intermediate {
		final.Merge(dist)
	}
	return final
}

// isValidKeyword checks if a keyword should be included in results.
// Filters malformed tokens (unmatched delimiters, trailing special chars,
// unmatched quotes) while keeping technical terms like x_train.
func isValidKeyword(word string) bool {
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "=") {
		return false
	}

	if strings.Contains(word, "(") != strings.Contains(word, ")") {
		return false
	}
	if strings.Contains(word, "[") != strings.Contains(word, "]") {
		return false
	}
	if strings.Contains(word, "{") != strings.Contains(word, "}") {
		return false
	}

	if strings.Count(word, `"`)%2 != 0 {
		return false
	}
	if strings.Count(word, "'")%2 != 0 {
		return false
	}

	return true
}

// TopKeywords ranks the non-zero entries of dist by count descending and
// returns at most n keywords, skipping malformed tokens. Ties break
// alphabetically so rankings are stable across runs.
func TopKeywords(dist *freqdist.Distribution[string], n int) []Keyword {
	ranked := make([]Keyword, 0, dist.Len())
	for word := range dist.NonZero() {
		if isValidKeyword(word) {
			ranked = append(ranked, Keyword{Word: word, Count: dist.Get(word)})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// FormatKeywords renders keywords as "word:count" strings.
func FormatKeywords(keywords []Keyword) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = kw.String()
	}
	return out
}

// PrintTopKeywords prints the top n keywords of dist as a numbered list.
func PrintTopKeywords(dist *freqdist.Distribution[string], n int) {
	for i, kw := range TopKeywords(dist, n) {
		fmt.Printf("%d. %s: %d\n", i+1, kw.Word, kw.Count)
	}
}
