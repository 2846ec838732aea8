// Package repl provides the interactive prompt opened after the exercises
// with --interactive. Every statement goes through the same runner, so
// failures are reported and the prompt keeps going.
package repl

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/sqltutorial/sqltutorial/internal/db"
	"github.com/sqltutorial/sqltutorial/internal/exercises/runner"
	"github.com/sqltutorial/sqltutorial/internal/log"
	"github.com/sqltutorial/sqltutorial/internal/styled"
)

const (
	tablesQuery = "SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name"
	schemaQuery = "SELECT sql FROM sqlite_master WHERE sql IS NOT NULL ORDER BY name"
)

type Repl struct {
	ctx         context.Context
	runner      *runner.Runner
	printer     *styled.Printer
	logger      log.Logger
	inTx        bool
	historyPath string
}

func NewRepl(
	ctx context.Context,
	r *runner.Runner,
	printer *styled.Printer,
	logger log.Logger,
) Repl {
	return Repl{
		ctx:         ctx,
		runner:      r,
		printer:     printer,
		logger:      logger,
		historyPath: filepath.Join(os.TempDir(), ".sqltutorial_history"),
	}
}

// Start reads statements until the user quits, the input ends or the
// context is cancelled.
func (r *Repl) Start() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(cmdHelpCompleter)

	r.loadHistory(line)
	r.logger.DebugNs(log.NsRepl, "prompt opened", log.KV{"history": r.historyPath})

	r.printer.Println()
	r.printer.Println(`Enter ".help" for usage hints and ".quit" or "CTRL+C" to quit`)

	for {
		select {
		case <-r.ctx.Done():
			return nil
		default:
		}

		input, err := line.Prompt(r.label())
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			r.printer.Println()
			return nil
		}
		if err != nil {
			r.logger.ErrorNs(log.NsRepl, "failed to read input", log.KV{"error": err.Error()})
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)
		r.saveHistory(line)

		if quit := r.handle(input); quit {
			return nil
		}
	}
}

func (r *Repl) loadHistory(line *liner.State) {
	file, err := os.Open(r.historyPath)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		r.logger.WarnNs(log.NsRepl, "failed to open history", log.KV{"error": err.Error()})
		return
	}
	defer file.Close()

	if _, err := line.ReadHistory(file); err != nil {
		r.logger.WarnNs(log.NsRepl, "failed to read history", log.KV{"error": err.Error()})
	}
}

func (r *Repl) saveHistory(line *liner.State) {
	file, err := os.Create(r.historyPath)
	if err != nil {
		r.logger.WarnNs(log.NsRepl, "failed to save history", log.KV{"error": err.Error()})
		return
	}
	defer file.Close()

	if _, err := line.WriteHistory(file); err != nil {
		r.logger.WarnNs(log.NsRepl, "failed to save history", log.KV{"error": err.Error()})
	}
}

// handle runs one line of input. It returns true when the user asked to
// quit.
func (r *Repl) handle(input string) bool {
	switch input {
	case ".exit", ".quit", "exit":
		return true
	case ".clear", "clear":
		clearTerminal()
		return false
	case ".help", "help":
		cmdHelp(r.printer)
		return false
	case ".tables":
		r.runner.Execute(r.ctx, tablesQuery)
		return false
	case ".schema":
		r.runner.Execute(r.ctx, schemaQuery)
		return false
	case ".stats":
		cmdStats(r)
		return false
	}

	if strings.HasPrefix(input, ".") {
		r.logger.DebugNs(log.NsRepl, "unknown command", log.KV{"command": input})
		r.printer.Println("Unknown command, type .help for usage hints")
		return false
	}

	res, ok := r.runner.Execute(r.ctx, input)
	if !ok {
		return false
	}

	switch res.Type {
	case db.StatementTypeBegin:
		r.inTx = true
	case db.StatementTypeCommit, db.StatementTypeRollback:
		r.inTx = false
	default:
		return false
	}
	r.logger.DebugNs(log.NsRepl, "transaction state changed", log.KV{"in_tx": r.inTx})
	return false
}

// label returns the prompt, marking an open transaction.
func (r *Repl) label() string {
	if r.inTx {
		return "sql(tx)> "
	}
	return "sql> "
}
