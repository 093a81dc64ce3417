package commands

import (
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.trai.ch/recheck/internal/app"
	"go.trai.ch/recheck/internal/core/domain"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the result of the last check of every puzzle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Status(cmd.Context())
			if err != nil {
				return err
			}

			tbl := newStatusTable(report)
			tbl.SetOutputMirror(cmd.OutOrStdout())
			tbl.Render()
			return nil
		},
	}
}

// newStatusTable lays out one row per record. Puzzles that were never
// checked have no size or timestamp. Records of puzzles dropped from the
// manifest follow, marked as unlisted.
func newStatusTable(report app.StatusReport) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false

	tbl.AppendHeader(table.Row{"Status", "Puzzle", "Size", "Checked", "Run"})
	for _, r := range report.Records {
		tbl.AppendRow(statusRow(r, r.Puzzle))
	}
	for _, r := range report.Unlisted {
		tbl.AppendRow(statusRow(r, r.Puzzle+" (unlisted)"))
	}
	return tbl
}

func statusRow(r domain.CheckRecord, label string) table.Row {
	if r.Timestamp.IsZero() {
		return table.Row{r.Status, label, "", "", ""}
	}
	return table.Row{
		r.Status,
		label,
		humanize.Bytes(r.ArtifactSize),
		humanize.Time(r.Timestamp),
		shortRunID(r.RunID),
	}
}

func shortRunID(id string) string {
	const n = 8
	if len(id) > n {
		return id[:n]
	}
	return id
}
