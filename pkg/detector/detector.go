// Package detector identifies the language of a document so the matching
// stopword set is applied during counting.
package detector

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// DefaultLanguage is reported when detection fails or confidence is too low.
const DefaultLanguage = "en"

// minConfidence is the threshold below which detection results are ignored.
// Short snippets produce noisy guesses; falling back to English keeps the
// counting pipeline deterministic for them.
const minConfidence = 0.6

// supported lists the languages with a stopword set in pkg/analytics.
var supported = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.German,
	lingua.French,
}

var (
	buildOnce sync.Once
	detector  lingua.LanguageDetector
)

// get builds the lingua detector lazily; loading the language models is
// expensive, so it happens at most once per process.
func get() lingua.LanguageDetector {
	buildOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(supported...).
			Build()
	})
	return detector
}

// Detect returns the ISO-639-1 code of text's most likely language together
// with the detector's confidence in that choice.
func Detect(text string) (string, float64) {
	d := get()

	lang, ok := d.DetectLanguageOf(text)
	if !ok {
		return DefaultLanguage, 0
	}

	confidence := d.ComputeLanguageConfidence(text, lang)
	if confidence < minConfidence {
		return DefaultLanguage, confidence
	}

	return strings.ToLower(lang.IsoCode639_1().String()), confidence
}

// Supported returns the ISO-639-1 codes the detector can report.
func Supported() []string {
	codes := make([]string, len(supported))
	for i, lang := range supported {
		codes[i] = strings.ToLower(lang.IsoCode639_1().String())
	}
	return codes
}
