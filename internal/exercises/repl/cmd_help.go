package repl

import (
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sqltutorial/sqltutorial/internal/styled"
)

type dotCmd struct {
	name         string
	autocomplete string
	help         string
}

func cmdHelpCommands() []dotCmd {
	cmds := []dotCmd{
		{name: ".tables", autocomplete: ".tables", help: "List all tables in the database"},
		{name: ".schema", autocomplete: ".schema", help: "Show the CREATE statement of every table and index"},
		{name: ".stats", autocomplete: ".stats", help: "Show how many statements of each kind were run"},
		{name: ".clear", autocomplete: ".clear", help: "Clear the terminal screen"},
		{name: ".help", autocomplete: ".help", help: "Show the help message"},
		{name: ".quit", autocomplete: ".quit", help: "Leave the prompt"},
		{name: ".exit", autocomplete: ".exit", help: "Leave the prompt"},
		{name: "CTRL+c", help: "Leave the prompt"},
	}

	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].name < cmds[j].name
	})

	return cmds
}

func cmdHelp(printer *styled.Printer) {
	printer.Println("Available commands:")

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Command", "Description"})
	for _, cmd := range cmdHelpCommands() {
		tw.AppendRow(table.Row{cmd.name, cmd.help})
	}

	printer.Println(tw.Render())
}

func cmdHelpCompleter(line string) []string {
	suggestions := []string{
		"SELECT ",
		"SELECT * FROM ",
		"SELECT COUNT(*) FROM ",
		"INSERT INTO ",
		"UPDATE ",
		"DELETE FROM ",
		"CREATE TABLE ",
		"DROP TABLE ",
		"BEGIN",
		"COMMIT",
		"ROLLBACK",
	}

	for _, cmd := range cmdHelpCommands() {
		if cmd.autocomplete != "" {
			suggestions = append(suggestions, cmd.autocomplete)
		}
	}

	results := []string{}
	for _, suggestion := range suggestions {
		if strings.HasPrefix(strings.ToLower(suggestion), strings.ToLower(line)) {
			results = append(results, suggestion)
		}
	}

	return results
}
