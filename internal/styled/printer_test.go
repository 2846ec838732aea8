package styled

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/sqltutorial/sqltutorial/internal/db"
	"github.com/stretchr/testify/assert"
)

func init() {
	DisableColor()
}

var twoStudents = db.ReadResult{
	Columns: []string{"StudentID", "FirstName", "Age"},
	Types:   []string{"integer", "text", "integer"},
	Values: [][]any{
		{int64(1), "John", int64(20)},
		{int64(4), "Mary", int64(20)},
	},
}

func TestPrinterPlain(t *testing.T) {
	t.Run("Rows", func(t *testing.T) {
		buf := &bytes.Buffer{}
		p := NewPrinter(buf, OutputPlain)
		p.Rows(twoStudents)
		assert.Equal(t, "(1, 'John', 20)\n(4, 'Mary', 20)\n", buf.String())
	})

	t.Run("Row", func(t *testing.T) {
		buf := &bytes.Buffer{}
		p := NewPrinter(buf, OutputPlain)
		p.Row(twoStudents)
		assert.Equal(t, "(1, 'John', 20)\n", buf.String())
		assert.Len(t, twoStudents.Values, 2)
	})

	t.Run("NoResults", func(t *testing.T) {
		buf := &bytes.Buffer{}
		p := NewPrinter(buf, OutputPlain)
		p.Rows(db.ReadResult{Columns: []string{"id"}})
		assert.Equal(t, "No results found.\n", buf.String())
	})

	t.Run("HeadingAndQuery", func(t *testing.T) {
		buf := &bytes.Buffer{}
		p := NewPrinter(buf, OutputPlain)
		p.Heading("Exercise 1")
		p.Query("SELECT 1;")
		assert.Equal(t, "\n--- Exercise 1 ---\nQuery: SELECT 1;\n", buf.String())
	})

	t.Run("Error", func(t *testing.T) {
		buf := &bytes.Buffer{}
		p := NewPrinter(buf, OutputPlain)
		err := fmt.Errorf("failed: %w", &db.QueryError{Query: "x", Err: errors.New("no such table: x")})
		p.Error(err)
		assert.Equal(t, "An error occurred: no such table: x\n", buf.String())
	})

	t.Run("Result", func(t *testing.T) {
		buf := &bytes.Buffer{}
		p := NewPrinter(buf, OutputPlain)
		p.Result(db.Result{Type: db.StatementTypeWrite, WriteResult: db.WriteResult{RowsAffected: 2}})
		p.Result(db.Result{Type: db.StatementTypeBegin})
		p.Result(db.Result{Type: db.StatementTypeCommit})
		p.Result(db.Result{Type: db.StatementTypeRollback})
		assert.Equal(t,
			"OK, 2 row(s) affected\nTransaction started\nTransaction committed\nTransaction rolled back\n",
			buf.String(),
		)
	})

	t.Run("UnknownFormatFallsBack", func(t *testing.T) {
		buf := &bytes.Buffer{}
		p := NewPrinter(buf, OutputFormat{Value: "xml"})
		p.Rows(twoStudents)
		assert.Equal(t, "(1, 'John', 20)\n(4, 'Mary', 20)\n", buf.String())
	})
}

func TestPrinterTable(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, OutputTable)
	p.Rows(twoStudents)

	out := buf.String()
	assert.Contains(t, out, "StudentID")
	assert.Contains(t, out, "FirstName")
	assert.Contains(t, out, "John")
	assert.Contains(t, out, "Mary")
	assert.NotContains(t, out, "'John'")
	assert.Contains(t, out, "┌")
}

func TestColumnConfigs(t *testing.T) {
	configs := columnConfigs([]string{"integer", "text", "real"})
	assert.Len(t, configs, 2)
	assert.Equal(t, 1, configs[0].Number)
	assert.Equal(t, 3, configs[1].Number)
}
