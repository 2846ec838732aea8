package styled

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/orsinium-labs/enum"
	"github.com/sqltutorial/sqltutorial/internal/db"
)

// OutputFormat selects how result rows are printed.
type OutputFormat enum.Member[string]

var (
	// OutputPlain prints one tuple per line.
	OutputPlain = OutputFormat{Value: "plain"}
	// OutputTable prints a go-pretty table per result set.
	OutputTable = OutputFormat{Value: "table"}

	OutputFormats = enum.New(OutputPlain, OutputTable)
)

// NoResultsMessage is printed for a read that returned no rows.
const NoResultsMessage = "No results found."

// Printer writes the demo output of both programs.
type Printer struct {
	w      io.Writer
	format OutputFormat
}

// NewPrinter creates a Printer writing to w. An unknown format falls back
// to OutputPlain.
func NewPrinter(w io.Writer, format OutputFormat) *Printer {
	if !OutputFormats.Contains(format) {
		format = OutputPlain
	}
	return &Printer{w: w, format: format}
}

// Println prints a plain status line.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Printf prints a formatted plain status line.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Heading prints a blank line followed by "--- label ---".
func (p *Printer) Heading(label string) {
	fmt.Fprintln(p.w)
	HeadingColor().Fprintf(p.w, "--- %s ---", label)
	fmt.Fprintln(p.w)
}

// Query prints the statement about to run.
func (p *Printer) Query(query string) {
	fmt.Fprint(p.w, "Query: ")
	DimmedColor().Fprint(p.w, query)
	fmt.Fprintln(p.w)
}

// Error prints a reported, non fatal query error.
func (p *Printer) Error(err error) {
	ErrorColor().Fprintf(p.w, "An error occurred: %s", db.EngineMessage(err))
	fmt.Fprintln(p.w)
}

// Rows prints every row of res, or NoResultsMessage when it has none.
func (p *Printer) Rows(res db.ReadResult) {
	if len(res.Values) == 0 {
		fmt.Fprintln(p.w, NoResultsMessage)
		return
	}

	if p.format == OutputTable {
		p.table(res)
		return
	}

	for _, row := range res.Values {
		fmt.Fprintln(p.w, FormatRow(row))
	}
}

// Row prints the first row of res, or NoResultsMessage when it has none.
func (p *Printer) Row(res db.ReadResult) {
	if len(res.Values) > 1 {
		res.Values = res.Values[:1]
	}
	p.Rows(res)
}

// Result prints the outcome of a statement run through db.Run.
func (p *Printer) Result(res db.Result) {
	switch res.Type {
	case db.StatementTypeRead:
		p.Rows(res.ReadResult)
	case db.StatementTypeWrite:
		fmt.Fprintf(p.w, "OK, %d row(s) affected\n", res.WriteResult.RowsAffected)
	case db.StatementTypeBegin:
		fmt.Fprintln(p.w, "Transaction started")
	case db.StatementTypeCommit:
		fmt.Fprintln(p.w, "Transaction committed")
	case db.StatementTypeRollback:
		fmt.Fprintln(p.w, "Transaction rolled back")
	}
}

func (p *Printer) table(res db.ReadResult) {
	tw := NewTableWriter()
	tw.SetColumnConfigs(columnConfigs(res.Types))

	header := table.Row{}
	for _, col := range res.Columns {
		header = append(header, col)
	}
	tw.AppendHeader(header)

	for _, values := range res.Values {
		row := table.Row{}
		for _, v := range values {
			switch v.(type) {
			case string:
				row = append(row, v)
			default:
				row = append(row, FormatValue(v))
			}
		}
		tw.AppendRow(row)
	}

	fmt.Fprintln(p.w, tw.Render())
}
