package tutorial

import (
	"context"
	"fmt"

	"github.com/sqltutorial/sqltutorial/internal/db"
	"github.com/sqltutorial/sqltutorial/internal/log"
	"github.com/sqltutorial/sqltutorial/internal/seedbar"
	"github.com/sqltutorial/sqltutorial/internal/styled"
)

// Walkthrough runs the create, insert, select, update and delete steps on
// the users table. Every mutation is committed as soon as it runs.
type Walkthrough struct {
	db      *db.DB
	printer *styled.Printer
	logger  log.Logger
	newBar  func(maxItems int) *seedbar.Bar
}

// NewWalkthrough creates a Walkthrough. If not nil, newBar creates the
// progress bar shown while users are inserted.
func NewWalkthrough(
	database *db.DB,
	printer *styled.Printer,
	logger log.Logger,
	newBar func(maxItems int) *seedbar.Bar,
) *Walkthrough {
	return &Walkthrough{
		db:      database,
		printer: printer,
		logger:  logger,
		newBar:  newBar,
	}
}

// Run executes every step in order and stops at the first error.
func (w *Walkthrough) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"create table", w.createTable},
		{"insert users", w.insertUsers},
		{"select all users", w.printAllUsers},
		{"update bob", w.updateBob},
		{"delete charlie", w.deleteCharlie},
		{"select remaining users", w.printFinalState},
	}

	for _, step := range steps {
		w.logger.DebugNs(log.NsTutorial, "running step", log.KV{"step": step.name})
		if err := step.fn(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (w *Walkthrough) createTable(ctx context.Context) error {
	if _, err := w.db.Exec(ctx, db.Statement{Query: createUsersTable}); err != nil {
		return fmt.Errorf("failed to create %s table: %w", usersTable, err)
	}
	w.printer.Printf("Table '%s' created successfully.\n", usersTable)
	return nil
}

func (w *Walkthrough) insertUsers(ctx context.Context) error {
	users := SeedUsers()
	rows := make([][]any, len(users))
	for i, u := range users {
		rows[i] = u.params()
	}

	var bar *seedbar.Bar
	if w.newBar != nil {
		bar = w.newBar(len(rows))
	}

	res, err := w.db.ExecMany(ctx, insertUser, rows, bar.OnRow())
	bar.Finish()
	if err != nil {
		return stepError("insert users", err)
	}

	w.logger.InfoNs(log.NsTutorial, "users inserted", log.KV{
		"rows":          len(rows),
		"rows_affected": res.RowsAffected,
	})
	w.printer.Printf("%d users added successfully.\n", res.RowsAffected)
	return nil
}

func (w *Walkthrough) printAllUsers(ctx context.Context) error {
	w.printer.Heading("All users in the table")
	return w.printUsers(ctx, selectAllUsers, false)
}

func (w *Walkthrough) updateBob(ctx context.Context) error {
	w.printer.Heading("Updating Bob's email")

	res, err := w.db.Exec(ctx, db.Statement{Query: updateBobEmail})
	if err != nil {
		return stepError("update Bob's email", err)
	}
	w.logger.InfoNs(log.NsTutorial, "email updated", log.KV{
		"rows_affected": res.RowsAffected,
	})
	w.printer.Println("Bob's email has been updated.")

	return w.printUsers(ctx, selectBob, true)
}

func (w *Walkthrough) deleteCharlie(ctx context.Context) error {
	w.printer.Heading("Deleting Charlie from the table")

	res, err := w.db.Exec(ctx, db.Statement{Query: deleteCharlie})
	if err != nil {
		return stepError("delete Charlie", err)
	}
	w.logger.InfoNs(log.NsTutorial, "user deleted", log.KV{
		"rows_affected": res.RowsAffected,
	})
	w.printer.Printf("%d user(s) deleted.\n", res.RowsAffected)
	return nil
}

func (w *Walkthrough) printFinalState(ctx context.Context) error {
	w.printer.Heading("Final state of the table")
	return w.printUsers(ctx, selectAllUsers, false)
}

func (w *Walkthrough) printUsers(ctx context.Context, query string, firstOnly bool) error {
	res, err := w.db.Query(ctx, db.Statement{Query: query})
	if err != nil {
		return fmt.Errorf("failed to select users: %w", err)
	}

	if firstOnly {
		w.printer.Row(res)
		return nil
	}
	w.printer.Rows(res)
	return nil
}

// stepError wraps the error of a failed mutation, naming constraint
// failures such as a duplicate email.
func stepError(action string, err error) error {
	if db.IsConstraintViolation(err) {
		return fmt.Errorf("failed to %s (constraint violation): %w", action, err)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
