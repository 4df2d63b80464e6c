package sessions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/textkit/freqdist/pkg/db"
)

// SessionsAction lists recent counting sessions.
func SessionsAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	sessions, err := database.ListSessions(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-8s %-8s %-8s %-10s\n",
		"ID", "Created", "Sources", "Success", "Failed", "Language")
	fmt.Println(strings.Repeat("-", 70))

	for _, s := range sessions {
		lang := s.Language
		if lang == "" {
			lang = "(auto)"
		}
		fmt.Printf("%-6d %-20s %-8d %-8d %-8d %-10s\n",
			s.SessionID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.SourceCount,
			s.SuccessCount,
			s.FailedCount,
			lang,
		)
	}

	fmt.Printf("\nTotal: %d sessions\n", len(sessions))
	fmt.Printf("\nTip: Use 'freqdist session <id>' to see details\n")

	return nil
}

// SessionAction shows details and top tokens for a specific session.
func SessionAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	sessionID, err := sessionIDOrLatest(c, database)
	if err != nil {
		return err
	}

	session, err := database.GetSessionByID(sessionID)
	if err != nil {
		return err
	}

	docs, err := database.GetSessionDocuments(sessionID)
	if err != nil {
		return err
	}

	fmt.Printf("Session %d\n", session.SessionID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:   %s\n", session.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Sources:   %d total (%d success, %d failed)\n",
		session.SourceCount, session.SuccessCount, session.FailedCount)
	if session.Language != "" {
		fmt.Printf("Language:  %s (forced)\n", session.Language)
	}

	if len(docs) > 0 {
		fmt.Printf("\nDocuments (%d):\n", len(docs))
		fmt.Println(strings.Repeat("-", 60))
		for i, d := range docs {
			fmt.Printf("%2d. [%s] %s\n", i+1, d.Status, d.Source)
			if d.Status == "failed" {
				fmt.Printf("    Error: [%s] %s\n", d.ErrorType, d.ErrorMessage)
			} else {
				fmt.Printf("    Language: %s | Tokens: %d | Distinct: %d\n",
					d.Language, d.WordCount, d.DistinctCount)
			}
		}
	}

	top, err := database.TopTokens(sessionID, c.Int("top"))
	if err != nil {
		return err
	}
	if len(top) > 0 {
		fmt.Printf("\nTop tokens (%d):\n", len(top))
		fmt.Println(strings.Repeat("-", 60))
		for i, tc := range top {
			fmt.Printf("%2d. %s: %d\n", i+1, tc.Token, tc.Count)
		}
	}

	return nil
}

// sessionIDOrLatest resolves the session ID argument, falling back to the
// most recent session when none is given.
func sessionIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	arg := c.Args().First()
	if arg == "" {
		return database.LatestSessionID()
	}

	sessionID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid session ID: %s", arg)
	}
	return sessionID, nil
}
