// Package report writes YAML session summaries and maintains the sessions
// index under the output directory.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/textkit/freqdist/pkg/storage"
)

// DocumentSummary is the per-source section of a session summary.
type DocumentSummary struct {
	Source        string `yaml:"source"`
	Status        string `yaml:"status"`
	Title         string `yaml:"title,omitempty"`
	Language      string `yaml:"language,omitempty"`
	WordCount     uint64 `yaml:"word_count,omitempty"`
	DistinctCount int    `yaml:"distinct_count,omitempty"`
	ErrorType     string `yaml:"error_type,omitempty"`
	ErrorMessage  string `yaml:"error_message,omitempty"`
}

// Summary is the full YAML report of one counting session.
type Summary struct {
	SessionID      int64             `yaml:"session_id"`
	GeneratedAt    string            `yaml:"generated_at"`
	SourceCount    int               `yaml:"source_count"`
	Successful     int               `yaml:"successful"`
	Failed         int               `yaml:"failed"`
	TotalTokens    uint64            `yaml:"total_tokens"`
	DistinctTokens int               `yaml:"distinct_tokens"`
	Languages      map[string]uint64 `yaml:"languages,omitempty"` // documents per detected language
	TopKeywords    []string          `yaml:"top_keywords,omitempty"`
	Documents      []DocumentSummary `yaml:"documents"`
}

// IndexEntry is one line of the sessions index.
type IndexEntry struct {
	SessionID   int64  `yaml:"session_id"`
	Created     string `yaml:"created"`
	SourceCount int    `yaml:"source_count"`
	Successful  int    `yaml:"successful"`
	Failed      int    `yaml:"failed"`
	SummaryPath string `yaml:"summary_path"`
}

// Index is the index.yaml file at the output root.
type Index struct {
	Sessions []IndexEntry `yaml:"sessions"`
}

// SummaryPath returns where a session's summary lives under baseDir.
func SummaryPath(baseDir string, sessionID int64) string {
	return filepath.Join(baseDir, "sessions", fmt.Sprintf("session-%d.yaml", sessionID))
}

// indexPath returns the path of the sessions index file.
func indexPath(baseDir string) string {
	return filepath.Join(baseDir, "index.yaml")
}

// Write marshals the summary and saves it under baseDir, returning the path
// it was written to.
func Write(baseDir string, s *Summary, store *storage.Storage) (string, error) {
	if s.GeneratedAt == "" {
		s.GeneratedAt = time.Now().Format(time.RFC3339)
	}

	out, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary: %w", err)
	}

	path := SummaryPath(baseDir, s.SessionID)
	if err := store.SaveFile(path, out); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}
	return path, nil
}

// UpdateIndex adds or replaces a session entry in index.yaml, keeping the
// list sorted newest first.
func UpdateIndex(baseDir string, entry IndexEntry) error {
	path := indexPath(baseDir)

	var index Index
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read session index: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &index); err != nil {
			return fmt.Errorf("failed to parse session index: %w", err)
		}
	}

	found := false
	for i, s := range index.Sessions {
		if s.SessionID == entry.SessionID {
			index.Sessions[i] = entry
			found = true
			break
		}
	}
	if !found {
		index.Sessions = append(index.Sessions, entry)
	}

	sort.Slice(index.Sessions, func(i, j int) bool {
		return index.Sessions[i].SessionID > index.Sessions[j].SessionID
	})

	out, err := yaml.Marshal(&index)
	if err != nil {
		return fmt.Errorf("failed to marshal session index: %w", err)
	}

	store := &storage.Storage{}
	if err := store.SaveFile(path, out); err != nil {
		return fmt.Errorf("failed to write session index: %w", err)
	}
	return nil
}

// ReadIndex loads the sessions index, returning an empty index when none
// exists yet.
func ReadIndex(baseDir string) (*Index, error) {
	data, err := os.ReadFile(indexPath(baseDir))
	if os.IsNotExist(err) {
		return &Index{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session index: %w", err)
	}

	var index Index
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to parse session index: %w", err)
	}
	return &index, nil
}
