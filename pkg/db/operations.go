package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/textkit/freqdist/models"
	"github.com/textkit/freqdist/pkg/freqdist"
)

// Session mirrors a row of the sessions table.
type Session struct {
	SessionID    int64
	CreatedAt    time.Time
	SourceCount  int
	SuccessCount int
	FailedCount  int
	Language     string
	TopKeywords  string
}

// DocumentRow mirrors a row of the documents table.
type DocumentRow struct {
	DocID              int64
	SessionID          int64
	Source             string
	SourceKind         string
	Title              string
	Language           string
	LanguageConfidence float64
	WordCount          int64
	DistinctCount      int64
	Status             string
	ErrorType          string
	ErrorMessage       string
}

// TokenCount is a single (token, count) row of a stored distribution.
type TokenCount struct {
	Token string
	Count int64
}

// CreateSession inserts a new session row and returns its ID.
func (db *DB) CreateSession(sourceCount int, language string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO sessions (source_count, language)
		VALUES (?, ?)
	`, sourceCount, language)
	if err != nil {
		return 0, fmt.Errorf("failed to create session: %w", err)
	}

	sessionID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get session ID: %w", err)
	}
	return sessionID, nil
}

// FinishSession records the final counts and top keywords of a session.
func (db *DB) FinishSession(sessionID int64, success, failed int, topKeywords string) error {
	_, err := db.Exec(`
		UPDATE sessions
		SET success_count = ?, failed_count = ?, top_keywords = ?
		WHERE session_id = ?
	`, success, failed, topKeywords, sessionID)
	if err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}
	return nil
}

// GetSessionByID returns a single session.
func (db *DB) GetSessionByID(sessionID int64) (*Session, error) {
	var s Session
	var language, topKeywords sql.NullString
	err := db.QueryRow(`
		SELECT session_id, created_at, source_count, success_count, failed_count, language, top_keywords
		FROM sessions WHERE session_id = ?
	`, sessionID).Scan(&s.SessionID, &s.CreatedAt, &s.SourceCount, &s.SuccessCount, &s.FailedCount, &language, &topKeywords)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %d not found", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	s.Language = language.String
	s.TopKeywords = topKeywords.String
	return &s, nil
}

// ListSessions returns the most recent sessions, newest first.
func (db *DB) ListSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT session_id, created_at, source_count, success_count, failed_count, language, top_keywords
		FROM sessions
		ORDER BY session_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var language, topKeywords sql.NullString
		if err := rows.Scan(&s.SessionID, &s.CreatedAt, &s.SourceCount, &s.SuccessCount, &s.FailedCount, &language, &topKeywords); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.Language = language.String
		s.TopKeywords = topKeywords.String
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// LatestSessionID returns the ID of the most recent session.
func (db *DB) LatestSessionID() (int64, error) {
	var id int64
	err := db.QueryRow("SELECT session_id FROM sessions ORDER BY session_id DESC LIMIT 1").Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("no sessions found")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest session: %w", err)
	}
	return id, nil
}

// InsertDocument records a per-source result, returning the doc_id.
func (db *DB) InsertDocument(sessionID int64, doc models.Document) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO documents (session_id, source, source_kind, title, language, language_confidence,
		                       word_count, distinct_count, status, error_type, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sessionID, doc.Source, doc.Kind, doc.Title, doc.Language, doc.LanguageConfidence,
		doc.WordCount, doc.DistinctCount, doc.Status, doc.ErrorType, doc.ErrorMessage)
	if err != nil {
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}

	docID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get document ID: %w", err)
	}
	return docID, nil
}

// GetSessionDocuments returns every document of a session in insert order.
func (db *DB) GetSessionDocuments(sessionID int64) ([]DocumentRow, error) {
	rows, err := db.Query(`
		SELECT doc_id, session_id, source, source_kind, title, language, language_confidence,
		       word_count, distinct_count, status, error_type, error_message
		FROM documents
		WHERE session_id = ?
		ORDER BY doc_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session documents: %w", err)
	}
	defer rows.Close()

	var docs []DocumentRow
	for rows.Next() {
		var d DocumentRow
		var title, language, errorType, errorMessage sql.NullString
		var confidence sql.NullFloat64
		if err := rows.Scan(&d.DocID, &d.SessionID, &d.Source, &d.SourceKind, &title, &language, &confidence,
			&d.WordCount, &d.DistinctCount, &d.Status, &errorType, &errorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		d.Title = title.String
		d.Language = language.String
		d.LanguageConfidence = confidence.Float64
		d.ErrorType = errorType.String
		d.ErrorMessage = errorMessage.String
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// SaveTokenCounts stores the non-zero entries of a distribution for a
// session inside one transaction.
func (db *DB) SaveTokenCounts(sessionID int64, dist *freqdist.Distribution[string]) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO token_counts (session_id, token, count)
		VALUES (?, ?, ?)
		ON CONFLICT(session_id, token) DO UPDATE SET count = excluded.count
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare token insert: %w", err)
	}
	defer stmt.Close()

	for token := range dist.NonZero() {
		if _, err := stmt.Exec(sessionID, token, dist.Get(token)); err != nil {
			return fmt.Errorf("failed to insert token count: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit token counts: %w", err)
	}
	return nil
}

// GetTokenCounts rebuilds the stored distribution of a session.
func (db *DB) GetTokenCounts(sessionID int64) (*freqdist.Distribution[string], error) {
	rows, err := db.Query(`
		SELECT token, count FROM token_counts WHERE session_id = ?
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get token counts: %w", err)
	}
	defer rows.Close()

	var pairs []freqdist.Pair[string]
	for rows.Next() {
		var token string
		var count uint64
		if err := rows.Scan(&token, &count); err != nil {
			return nil, fmt.Errorf("failed to scan token count: %w", err)
		}
		pairs = append(pairs, freqdist.Pair[string]{Key: token, Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return freqdist.FromPairs(pairs), nil
}

// TopTokens returns the n highest-count tokens of a session, count
// descending with alphabetical tie-break.
func (db *DB) TopTokens(sessionID int64, n int) ([]TokenCount, error) {
	rows, err := db.Query(`
		SELECT token, count FROM token_counts
		WHERE session_id = ?
		ORDER BY count DESC, token ASC
		LIMIT ?
	`, sessionID, n)
	if err != nil {
		return nil, fmt.Errorf("failed to get top tokens: %w", err)
	}
	defer rows.Close()

	var tokens []TokenCount
	for rows.Next() {
		var tc TokenCount
		if err := rows.Scan(&tc.Token, &tc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan top token: %w", err)
		}
		tokens = append(tokens, tc)
	}
	return tokens, rows.Err()
}
