package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ColumnAlignment controls how a table column is justified.
type ColumnAlignment int

const (
	AlignLeft ColumnAlignment = iota
	AlignRight
)

func (a ColumnAlignment) text() text.Align {
	if a == AlignRight {
		return text.AlignRight
	}
	return text.AlignLeft
}

// RenderTable renders rows under headers as a rounded box table. Short rows
// are padded with empty cells; cells past the header width are dropped.
// Headers are always left aligned.
func RenderTable(headers []string, rows [][]string, aligns []ColumnAlignment) string {
	if len(headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(toRow(headers, len(headers)))
	for _, row := range rows {
		tw.AppendRow(toRow(row, len(headers)))
	}

	configs := make([]table.ColumnConfig, len(headers))
	for i := range configs {
		align := AlignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align.text(), AlignHeader: text.AlignLeft}
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

// toRow copies cells into a row of exactly width entries.
func toRow(cells []string, width int) table.Row {
	row := make(table.Row, width)
	for i := range row {
		row[i] = ""
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	return row
}
