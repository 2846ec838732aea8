// Package runner executes labelled queries and prints their results. Query
// failures are reported and never stop the caller.
package runner

import (
	"context"

	"github.com/sqltutorial/sqltutorial/internal/db"
	"github.com/sqltutorial/sqltutorial/internal/log"
	"github.com/sqltutorial/sqltutorial/internal/styled"
)

// Exercise is a labelled literal query.
type Exercise struct {
	Description string
	Query       string
}

// Runner executes queries against a database and prints the outcome.
type Runner struct {
	db      *db.DB
	printer *styled.Printer
	logger  log.Logger
}

// NewRunner creates a Runner.
func NewRunner(database *db.DB, printer *styled.Printer, logger log.Logger) *Runner {
	return &Runner{
		db:      database,
		printer: printer,
		logger:  logger,
	}
}

// ExecuteAndPrint prints the exercise heading and query text, then runs it.
func (r *Runner) ExecuteAndPrint(ctx context.Context, ex Exercise) {
	r.printer.Heading(ex.Description)
	r.printer.Query(ex.Query)
	r.Execute(ctx, ex.Query)
}

// RunAll runs every exercise in order.
func (r *Runner) RunAll(ctx context.Context, exercises []Exercise) {
	for _, ex := range exercises {
		r.ExecuteAndPrint(ctx, ex)
	}
}

// Execute runs query and prints its rows or its error. The returned bool is
// false when the query failed.
func (r *Runner) Execute(ctx context.Context, query string) (db.Result, bool) {
	res, err := r.db.Run(ctx, db.Statement{Query: query})
	if err != nil {
		r.logger.WarnNs(log.NsExercises, "query failed", log.KV{
			"query":      query,
			"error":      err.Error(),
			"constraint": db.IsConstraintViolation(err),
		})
		r.printer.Error(err)
		return db.Result{}, false
	}

	r.printer.Result(res)
	return res, true
}

// Stats returns the statement counters of the underlying database.
func (r *Runner) Stats() db.Stats {
	return r.db.Stats()
}
