// Package main is the schema migration CLI. It applies, rolls back, and
// reports the embedded goose migrations against DATABASE_URL.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v2"

	"github.com/pkordes/trip-planner/migrations"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "migrate",
		Usage: "Manage the trip planner database schema.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "database-url",
				Usage:    "Postgres connection string.",
				EnvVars:  []string{"DATABASE_URL"},
				Required: true,
			},
		},
		Commands: []*cli.Command{
			upCommand(),
			downCommand(),
			statusCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}
}

func upCommand() *cli.Command {
	return &cli.Command{
		Name:  "up",
		Usage: "Apply every pending migration.",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "to", Usage: "Stop after this version instead of applying all."},
		},
		Action: func(c *cli.Context) error {
			return withProvider(c, func(ctx context.Context, p *goose.Provider) error {
				var (
					results []*goose.MigrationResult
					err     error
				)
				if c.IsSet("to") {
					results, err = p.UpTo(ctx, c.Int64("to"))
				} else {
					results, err = p.Up(ctx)
				}
				logResults(results)
				if err != nil {
					return fmt.Errorf("up: %w", err)
				}
				if len(results) == 0 {
					slog.Info("schema is up to date")
				}
				return nil
			})
		},
	}
}

func downCommand() *cli.Command {
	return &cli.Command{
		Name:  "down",
		Usage: "Roll back the most recent migration, or down to --to.",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "to", Usage: "Roll back until this version is current; 0 drops everything."},
		},
		Action: func(c *cli.Context) error {
			return withProvider(c, func(ctx context.Context, p *goose.Provider) error {
				if c.IsSet("to") {
					results, err := p.DownTo(ctx, c.Int64("to"))
					logResults(results)
					if err != nil {
						return fmt.Errorf("down: %w", err)
					}
					return nil
				}
				result, err := p.Down(ctx)
				if result != nil {
					logResults([]*goose.MigrationResult{result})
				}
				if err != nil {
					return fmt.Errorf("down: %w", err)
				}
				return nil
			})
		},
	}
}

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "List every migration and whether it is applied.",
		Action: func(c *cli.Context) error {
			return withProvider(c, func(ctx context.Context, p *goose.Provider) error {
				statuses, err := p.Status(ctx)
				if err != nil {
					return fmt.Errorf("status: %w", err)
				}
				w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "VERSION\tSTATE\tAPPLIED AT\tFILE")
				for _, s := range statuses {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.Format(time.RFC3339)
					}
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
				}
				return w.Flush()
			})
		},
	}
}

// withProvider opens the database named by --database-url, builds the goose
// provider, and runs fn. The connection is closed when fn returns.
func withProvider(c *cli.Context, fn func(ctx context.Context, p *goose.Provider) error) error {
	db, err := sql.Open("pgx", c.String("database-url"))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(c.Context); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	p, err := migrations.NewProvider(db)
	if err != nil {
		return err
	}
	return fn(c.Context, p)
}

func logResults(results []*goose.MigrationResult) {
	for _, r := range results {
		slog.Info("migration",
			"version", r.Source.Version,
			"direction", r.Direction,
			"file", r.Source.Path,
			"duration_ms", r.Duration.Milliseconds(),
		)
	}
}
