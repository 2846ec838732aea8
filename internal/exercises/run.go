// Package exercises implements the exercise runner: it makes sure the seeded
// Students database exists and then prints the result of five queries.
package exercises

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/sqltutorial/sqltutorial/internal/config"
	"github.com/sqltutorial/sqltutorial/internal/db"
	"github.com/sqltutorial/sqltutorial/internal/exercises/repl"
	"github.com/sqltutorial/sqltutorial/internal/exercises/runner"
	"github.com/sqltutorial/sqltutorial/internal/log"
	"github.com/sqltutorial/sqltutorial/internal/seedbar"
	"github.com/sqltutorial/sqltutorial/internal/styled"
)

// Run runs the exercise runner.
func Run(ctx context.Context) error {
	conf := config.MustParseExercises(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, conf, os.Stdout, os.Stderr)
}

func run(
	ctx context.Context, conf config.Exercises, stdout, stderr io.Writer,
) error {
	if conf.NoColor {
		styled.DisableColor()
	}

	logger := log.NewLogger(stderr, conf.Level(), log.KV{"run": uuid.NewString()})
	logger.DebugNs(log.NsExercises, "starting exercise runner", log.KV{
		"database_file": conf.DatabaseFile,
		"driver":        conf.Driver,
	})

	database, err := db.Open(ctx, db.Config{
		Logger:               logger,
		Path:                 conf.DatabaseFile,
		Driver:               conf.DatabaseDriver(),
		DisableOptimizations: conf.DisableOptimizations,
		WAL:                  conf.WAL,
	})
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.ErrorNs(log.NsExercises, "error closing database", log.KV{"error": err})
		}
	}()

	printer := styled.NewPrinter(stdout, conf.OutputFormat())

	var newBar func(int) *seedbar.Bar
	if conf.Progress {
		newBar = func(maxItems int) *seedbar.Bar {
			return seedbar.New(stderr, "Seeding Students", maxItems)
		}
	}

	if _, err := SetupDatabase(ctx, database, printer, newBar); err != nil {
		return fmt.Errorf("error setting up database: %w", err)
	}

	r := runner.NewRunner(database, printer, logger)
	r.RunAll(ctx, Exercises())

	if conf.Interactive {
		rp := repl.NewRepl(ctx, r, printer, logger)
		if err := rp.Start(); err != nil {
			return fmt.Errorf("error running prompt: %w", err)
		}
	}

	return nil
}
