package styled

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewTableWriter returns a new table.Writer with the custom
// styles for the result tables.
func NewTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	if !colorDisabled() {
		tw.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
		tw.Style().Color.Footer = text.Colors{text.FgCyan, text.Bold}
	}

	return tw
}

// columnConfigs right-aligns the numeric columns of a result.
func columnConfigs(types []string) []table.ColumnConfig {
	configs := []table.ColumnConfig{}
	for i, t := range types {
		if t == "integer" || t == "real" {
			configs = append(configs, table.ColumnConfig{
				Number: i + 1,
				Align:  text.AlignRight,
			})
		}
	}
	return configs
}
