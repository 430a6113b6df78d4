// Console rendering of match results.

package report

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"go-career-watcher/internal/models"
)

// RenderMatches prints a Job ID / Recommend / Analysis table for the given
// listings. Unscored listings show a dash.
func RenderMatches(out io.Writer, title string, collection models.Collection) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)

	t.AppendHeader(table.Row{"Job ID", "Title", "Recommend", "Analysis"})
	for _, l := range collection {
		t.AppendRow(table.Row{l.ID, l.Title, scoreCell(l), analysisCell(l)})
	}
	t.Render()
}

// RenderRanking prints the sorted view, id/score/title only.
func RenderRanking(out io.Writer, collection models.Collection) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Jobs Sorted by Recommend")

	t.AppendHeader(table.Row{"Job ID", "Recommend", "Title"})
	for _, l := range collection {
		t.AppendRow(table.Row{l.ID, scoreCell(l), l.Title})
	}
	t.Render()
}

func scoreCell(l models.Listing) string {
	if l.Recommend == nil {
		return "-"
	}
	return strconv.Itoa(*l.Recommend)
}

func analysisCell(l models.Listing) string {
	if l.Analysis == nil {
		return ""
	}
	return *l.Analysis
}
