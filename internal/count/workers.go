package count

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/textkit/freqdist/models"
	"github.com/textkit/freqdist/pkg/analytics"
	"github.com/textkit/freqdist/pkg/detector"
	"github.com/textkit/freqdist/pkg/fetcher"
	"github.com/textkit/freqdist/pkg/freqdist"
	"github.com/textkit/freqdist/pkg/mapreduce"
	"github.com/textkit/freqdist/pkg/parser"
)

// Job defines a source for a worker to count.
type Job struct {
	Source string
	Kind   string
}

// Result holds the outcome of a processed job.
type Result struct {
	Doc    models.Document
	Counts *freqdist.Distribution[string]
}

// pipeline bundles the read-only dependencies shared by the worker pool.
// Analyzers are built up front so workers never mutate shared state.
type pipeline struct {
	fetcher   *fetcher.Fetcher
	parser    *parser.Parser
	analyzers map[string]*analytics.Analytics
	forceLang string
}

func newPipeline(forceLang string, extraStopwords []string) *pipeline {
	analyzers := make(map[string]*analytics.Analytics)
	for _, lang := range detector.Supported() {
		analyzers[lang] = analytics.New(lang, extraStopwords...)
	}
	if forceLang != "" {
		if _, ok := analyzers[forceLang]; !ok {
			analyzers[forceLang] = analytics.New(forceLang, extraStopwords...)
		}
	}
	return &pipeline{
		fetcher:   fetcher.NewFetcher(),
		parser:    &parser.Parser{},
		analyzers: analyzers,
		forceLang: forceLang,
	}
}

func (p *pipeline) analyzerFor(lang string) *analytics.Analytics {
	if a, ok := p.analyzers[lang]; ok {
		return a
	}
	return p.analyzers[detector.DefaultLanguage]
}

// worker processes jobs from the jobs channel and sends results to the
// results channel.
func worker(ctx context.Context, id int, p *pipeline, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		log.Printf("Worker %d started job for %s", id, job.Source)
		results <- p.process(ctx, job)
		log.Printf("Worker %d finished job for %s", id, job.Source)
	}
}

func (p *pipeline) process(ctx context.Context, job Job) Result {
	doc := models.Document{Source: job.Source, Kind: job.Kind}

	text, title, errType, err := p.loadText(ctx, job)
	if err != nil {
		doc.Status = models.StatusFailed
		doc.ErrorType = errType
		doc.ErrorMessage = err.Error()
		return Result{Doc: doc}
	}
	doc.Title = title

	lang := p.forceLang
	if lang == "" {
		lang, doc.LanguageConfidence = detector.Detect(text)
	}
	doc.Language = lang

	counts := mapreduce.Map(text, p.analyzerFor(lang))
	doc.WordCount = counts.SumCounts()
	doc.DistinctCount = counts.Len()
	doc.Status = models.StatusSuccess

	return Result{Doc: doc, Counts: counts}
}

// loadText fetches or reads the job's source and extracts countable text,
// returning the text, a best-effort title, and an error classification on
// failure.
func (p *pipeline) loadText(ctx context.Context, job Job) (string, string, string, error) {
	switch job.Kind {
	case models.SourceURL:
		html, err := p.fetcher.GetHTML(ctx, job.Source)
		if err != nil {
			return "", "", "fetch_error", err
		}
		text, err := p.parser.ExtractText(job.Source, html)
		if err != nil {
			return "", "", "parse_error", err
		}
		return text, p.parser.Title(job.Source, html), "", nil

	default: // models.SourceFile
		data, err := os.ReadFile(job.Source)
		if err != nil {
			return "", "", "read_error", err
		}

		ext := strings.ToLower(filepath.Ext(job.Source))
		if ext == ".html" || ext == ".htm" {
			fileURL := "file://" + job.Source
			text, err := p.parser.ExtractText(fileURL, string(data))
			if err != nil {
				return "", "", "parse_error", err
			}
			return text, p.parser.Title(fileURL, string(data)), "", nil
		}

		// Anything else is treated as plain text.
		return string(data), filepath.Base(job.Source), "", nil
	}
}
