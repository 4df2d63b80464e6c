package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/textkit/freqdist/internal/count"
	"github.com/textkit/freqdist/internal/sessions"
)

func main() {
	app := &cli.App{
		Name:  "freqdist",
		Usage: "count token frequencies across web pages and local files",
		Commands: []*cli.Command{
			{
				Name:   "count",
				Usage:  "fetch sources, count token frequencies, and report top keywords",
				Action: count.CountAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "urls",
						Usage: "comma-separated list of URLs to count",
					},
					&cli.StringFlag{
						Name:  "files",
						Usage: "comma-separated list of local files to count (.html parsed, others read as text)",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file; flags override file values",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "number of concurrent workers",
						Value: 4,
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "how many top keywords to report",
						Value: 25,
					},
					&cli.StringFlag{
						Name:  "language",
						Usage: "force an ISO-639-1 language instead of detecting per document",
					},
					&cli.StringFlag{
						Name:  "stopwords",
						Usage: "comma-separated extra stopwords",
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "directory for session summaries",
						Value: "results",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "SQLite database path (default: next to the binary)",
					},
					&cli.BoolFlag{
						Name:  "no-store",
						Usage: "print results only, skip database and summary output",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:   "sessions",
				Usage:  "list recent counting sessions",
				Action: sessions.SessionsAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum sessions to list",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "SQLite database path (default: next to the binary)",
					},
				},
			},
			{
				Name:      "session",
				Usage:     "show one session's documents and top tokens",
				ArgsUsage: "[session-id]",
				Action:    sessions.SessionAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top",
						Usage: "how many top tokens to show",
						Value: 25,
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "SQLite database path (default: next to the binary)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
