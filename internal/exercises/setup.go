package exercises

import (
	"context"
	"fmt"

	"github.com/sqltutorial/sqltutorial/internal/db"
	"github.com/sqltutorial/sqltutorial/internal/log"
	"github.com/sqltutorial/sqltutorial/internal/seedbar"
	"github.com/sqltutorial/sqltutorial/internal/styled"
)

// SetupDatabase creates and seeds the Students table when it is absent.
// It reports whether the table was created; an existing table is left
// untouched.
//
// If not nil, newBar creates the progress bar shown while seeding.
func SetupDatabase(
	ctx context.Context,
	database *db.DB,
	printer *styled.Printer,
	newBar func(maxItems int) *seedbar.Bar,
) (bool, error) {
	exists, err := database.TableExists(ctx, studentsTable)
	if err != nil {
		return false, err
	}

	if exists {
		printer.Printf("Database '%s' already exists.\n", database.Path)
		return false, nil
	}

	printer.Printf("Creating new database: %s\n", database.Path)
	if _, err := database.Exec(ctx, db.Statement{Query: createStudentsTable}); err != nil {
		return false, fmt.Errorf("failed to create %s table: %w", studentsTable, err)
	}

	students := SeedStudents()
	rows := make([][]any, len(students))
	for i, s := range students {
		rows[i] = s.params()
	}

	var bar *seedbar.Bar
	if newBar != nil {
		bar = newBar(len(rows))
	}

	res, err := database.ExecMany(ctx, insertStudent, rows, bar.OnRow())
	bar.Finish()
	if err != nil {
		return false, fmt.Errorf("failed to seed %s table: %w", studentsTable, err)
	}

	database.Logger.InfoNs(log.NsExercises, "students seeded", log.KV{
		"rows": res.RowsAffected,
	})
	printer.Println("Database created and populated successfully.")
	return true, nil
}
