package count

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"strings"
	"sync"

	"github.com/urfave/cli/v2"

	"github.com/textkit/freqdist/internal/common"
	"github.com/textkit/freqdist/models"
	"github.com/textkit/freqdist/pkg/db"
	"github.com/textkit/freqdist/pkg/freqdist"
	"github.com/textkit/freqdist/pkg/mapreduce"
	"github.com/textkit/freqdist/pkg/report"
	"github.com/textkit/freqdist/pkg/storage"
)

const defaultWorkerCount = 4

// CountAction fetches or reads every configured source, counts token
// frequencies per document, reduces them into one aggregate distribution,
// and reports the top keywords.
func CountAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}

	sanitized, invalid := common.SanitizeAndValidateURLs(cfg.URLs)
	for _, u := range invalid {
		logger.Warn("skipping invalid URL", "url", u)
	}

	jobList := make([]Job, 0, len(sanitized)+len(cfg.Files))
	for _, u := range sanitized {
		jobList = append(jobList, Job{Source: u, Kind: models.SourceURL})
	}
	for _, f := range cfg.Files {
		jobList = append(jobList, Job{Source: f, Kind: models.SourceFile})
	}
	if len(jobList) == 0 {
		return fmt.Errorf("no sources provided; use --urls, --files, or --config")
	}

	logger.Info("starting count run", "sources", len(jobList), "workers", cfg.WorkerCount, "language", cfg.Language)

	p := newPipeline(cfg.Language, cfg.Stopwords)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(jobList))
	results := make(chan Result, len(jobList))

	ctx := context.Background()
	for w := 1; w <= cfg.WorkerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, p, &wg, jobs, results)
	}

	for _, job := range jobList {
		jobs <- job
	}
	close(jobs)

	wg.Wait()
	close(results)

	var allResults []Result
	var intermediate []*freqdist.Distribution[string]
	langCounts := freqdist.New[string]()
	success, failed := 0, 0
	for result := range results {
		allResults = append(allResults, result)
		if result.Doc.Status == models.StatusSuccess {
			success++
			intermediate = append(intermediate, result.Counts)
			langCounts.Insert(result.Doc.Language)
		} else {
			failed++
			logger.Warn("source failed", "source", result.Doc.Source,
				"error_type", result.Doc.ErrorType, "error", result.Doc.ErrorMessage)
		}
	}

	aggregate := mapreduce.Reduce(intermediate)
	logger.Info("reduce complete",
		"documents", success,
		"distinct_tokens", aggregate.Len(),
		"total_tokens", aggregate.SumCounts())

	fmt.Printf("\n--- Top %d Tokens (%d documents, %d total) ---\n", cfg.TopN, success, aggregate.SumCounts())
	mapreduce.PrintTopKeywords(aggregate, cfg.TopN)

	if c.Bool("no-store") {
		return nil
	}

	keywords := mapreduce.FormatKeywords(mapreduce.TopKeywords(aggregate, cfg.TopN))
	sessionID, err := persistSession(cfg, allResults, aggregate, keywords, success, failed)
	if err != nil {
		return err
	}

	summaryPath, err := writeSummary(cfg, sessionID, allResults, aggregate, langCounts, keywords, success, failed)
	if err != nil {
		return err
	}

	fmt.Printf("\nSession %d stored. Summary: %s\n", sessionID, summaryPath)
	return nil
}

// persistSession records the run and its aggregate distribution in SQLite.
func persistSession(cfg *models.RunConfig, results []Result, aggregate *freqdist.Distribution[string], keywords []string, success, failed int) (int64, error) {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	sessionID, err := database.CreateSession(len(results), cfg.Language)
	if err != nil {
		return 0, err
	}

	for _, r := range results {
		if _, err := database.InsertDocument(sessionID, r.Doc); err != nil {
			return 0, err
		}
	}

	if err := database.SaveTokenCounts(sessionID, aggregate); err != nil {
		return 0, err
	}

	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal keywords: %w", err)
	}
	if err := database.FinishSession(sessionID, success, failed, string(keywordsJSON)); err != nil {
		return 0, err
	}

	return sessionID, nil
}

// writeSummary emits the YAML session summary and refreshes the index.
func writeSummary(cfg *models.RunConfig, sessionID int64, results []Result, aggregate *freqdist.Distribution[string], langCounts *freqdist.Distribution[string], keywords []string, success, failed int) (string, error) {
	summary := &report.Summary{
		SessionID:      sessionID,
		SourceCount:    len(results),
		Successful:     success,
		Failed:         failed,
		TotalTokens:    aggregate.SumCounts(),
		DistinctTokens: aggregate.Len(),
		Languages:      maps.Collect(langCounts.All()),
		TopKeywords:    keywords,
	}
	for _, r := range results {
		summary.Documents = append(summary.Documents, report.DocumentSummary{
			Source:        r.Doc.Source,
			Status:        r.Doc.Status,
			Title:         r.Doc.Title,
			Language:      r.Doc.Language,
			WordCount:     r.Doc.WordCount,
			DistinctCount: r.Doc.DistinctCount,
			ErrorType:     r.Doc.ErrorType,
			ErrorMessage:  r.Doc.ErrorMessage,
		})
	}

	path, err := report.Write(cfg.OutputDir, summary, &storage.Storage{})
	if err != nil {
		return "", err
	}

	err = report.UpdateIndex(cfg.OutputDir, report.IndexEntry{
		SessionID:   sessionID,
		Created:     summary.GeneratedAt,
		SourceCount: summary.SourceCount,
		Successful:  success,
		Failed:      failed,
		SummaryPath: path,
	})
	if err != nil {
		return "", err
	}

	return path, nil
}

// resolveConfig merges the optional config file with CLI flags; flags win.
func resolveConfig(c *cli.Context) (*models.RunConfig, error) {
	cfg := &models.RunConfig{}
	if path := c.String("config"); path != "" {
		loaded, err := models.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("urls") {
		cfg.URLs = splitList(c.String("urls"))
	}
	if c.IsSet("files") {
		cfg.Files = splitList(c.String("files"))
	}
	if c.IsSet("workers") {
		cfg.WorkerCount = c.Int("workers")
	}
	if c.IsSet("top") {
		cfg.TopN = c.Int("top")
	}
	if c.IsSet("language") {
		cfg.Language = c.String("language")
	}
	if c.IsSet("stopwords") {
		cfg.Stopwords = splitList(c.String("stopwords"))
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("db") {
		cfg.DBPath = c.String("db")
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaultWorkerCount
	}
	if cfg.TopN <= 0 {
		cfg.TopN = 25
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "results"
	}

	return cfg, nil
}

// splitList parses a comma-separated flag value into trimmed entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
