package main

import (
	"context"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/atinyakov/passgen/internal/service"
)

// printHistory renders the most recent generations as a table.
func printHistory(ctx context.Context, out io.Writer, svc *service.GeneratorService, limit int) error {
	entries, err := svc.History(ctx, limit)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Generated", "Length", "Sets", "Score", "Strength"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Length,
			strings.Join(e.Classes, ","),
			e.Score,
			e.Strength,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", len(entries)})
	t.Render()
	return nil
}
