package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"textpipe/internal/pipeline"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderWordTable lists ranked words with their share of all counted words.
func renderWordTable(entries []pipeline.WordCount, total int) string {
	rows := make([][]string, 0, len(entries))
	for i, entry := range entries {
		share := 0.0
		if total > 0 {
			share = float64(entry.Count) * 100 / float64(total)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			entry.Word,
			strconv.Itoa(entry.Count),
			fmt.Sprintf("%.1f%%", share),
		})
	}
	return renderTable(
		[]string{"#", "Word", "Count", "Share"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
	)
}
