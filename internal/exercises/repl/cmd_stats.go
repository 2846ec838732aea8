package repl

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sqltutorial/sqltutorial/internal/styled"
	"github.com/sqltutorial/sqltutorial/internal/util/numutil"
)

func cmdStats(r *Repl) {
	stats := r.runner.Stats()

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Reads", "Writes", "Begins", "Commits", "Rollbacks"})
	tw.AppendRow(table.Row{
		numutil.IntWithCommas(stats.Reads),
		numutil.IntWithCommas(stats.Writes),
		numutil.IntWithCommas(stats.Begins),
		numutil.IntWithCommas(stats.Commits),
		numutil.IntWithCommas(stats.Rollbacks),
	})

	r.printer.Println(tw.Render())
	r.printer.Println(styled.DimmedColor().Sprint("Statements run since the database was opened"))
}
