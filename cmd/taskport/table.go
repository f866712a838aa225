package main

import (
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"taskport/internal/convert"
)

func renderBatchSummary(writer io.Writer, batch convert.BatchResult) string {
	tw := table.NewWriter()
	if isTerminal(writer) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	tw.AppendHeader(table.Row{"File", "Rows", "Skipped", "Duplicates", "Status"})
	for _, outcome := range batch.Outcomes {
		status := "ok"
		if outcome.Err != nil {
			status = outcome.Err.Error()
		}
		tw.AppendRow(table.Row{
			outcome.Result.Input,
			outcome.Result.Rows,
			outcome.Result.Skipped,
			outcome.Result.Duplicates,
			status,
		})
	}
	tw.AppendFooter(table.Row{
		"total",
		strconv.Itoa(batch.Rows),
		strconv.Itoa(batch.Skipped),
		strconv.Itoa(batch.Duplicates),
		"",
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
