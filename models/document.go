package models

// Source kinds for counted documents.
const (
	SourceURL  = "url"
	SourceFile = "file"
)

// Document statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Document is the per-source outcome of a counting run.
type Document struct {
	Source             string
	Kind               string // url or file
	Title              string
	Language           string
	LanguageConfidence float64
	WordCount          uint64 // total tokens counted, net of stopwords
	DistinctCount      int    // distinct tokens
	Status             string
	ErrorType          string
	ErrorMessage       string
}
