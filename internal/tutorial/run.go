// Package tutorial implements the CRUD walkthrough on the users table.
package tutorial

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
	"github.com/sqltutorial/sqltutorial/internal/log"
	"github.com/sqltutorial/sqltutorial/internal/seedbar"
	"github.com/sqltutorial/sqltutorial/internal/styled"
)

// Run runs the CRUD walkthrough.
func Run(ctx context.Context) error {
	conf := config.MustParseTutorial(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, conf, os.Stdout, os.Stderr)
}

func run(
	ctx context.Context, conf config.Tutorial, stdout, stderr io.Writer,
) error {
	if conf.NoColor {
		styled.DisableColor()
	}

	logger := log.NewLogger(stderr, conf.Level(), log.KV{"run": uuid.NewString()})
	logger.DebugNs(log.NsTutorial, "starting walkthrough", log.KV{
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
			logger.ErrorNs(log.NsTutorial, "error closing database", log.KV{"error": err})
		}
	}()

	var newBar func(int) *seedbar.Bar
	if conf.Progress {
		newBar = func(maxItems int) *seedbar.Bar {
			return seedbar.New(stderr, "Adding users", maxItems)
		}
	}

	printer := styled.NewPrinter(stdout, conf.OutputFormat())
	w := NewWalkthrough(database, printer, logger, newBar)
	if err := w.Run(ctx); err != nil {
		return fmt.Errorf("error running walkthrough: %w", err)
	}

	return nil
}
