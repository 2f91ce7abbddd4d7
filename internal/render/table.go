// Package render is the terminal presentation surface: list tables,
// statistic cards, pagination and the leave updates view.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/aerohr/console/internal/listview"
	"github.com/aerohr/console/pkg/derive"
	"github.com/aerohr/console/pkg/models"
)

// Column renders one cell of a record.
type Column[T models.Record] struct {
	Header string
	Value  func(T) string
}

// List renders the visible rows of view, a statistics strip and the
// pagination footer. classify colours the last column when non-nil.
func List[T models.Record](w io.Writer, view listview.View[T], cols []Column[T], classify func(T) derive.DateClass) {
	Statistics(w, view.Statistics)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := table.Row{}
	for _, c := range cols {
		header = append(header, c.Header)
	}
	t.AppendHeader(header)

	for _, r := range view.Visible {
		row := table.Row{}
		for i, c := range cols {
			cell := c.Value(r)
			if classify != nil && i == len(cols)-1 {
				cell = colour(classify(r)).Sprint(cell)
			}
			row = append(row, cell)
		}
		t.AppendRow(row)
	}
	if len(view.Visible) == 0 {
		t.AppendRow(table.Row{"No records found"})
	}
	t.Render()

	fmt.Fprintln(w, Footer(view.State, view.Total, len(view.Visible)))
	if view.LastErr != nil {
		fmt.Fprintf(w, "⚠️  showing last loaded data: %v\n", view.LastErr)
	}
}

// Footer describes the pagination position.
func Footer(state models.FilterState, total, shown int) string {
	parts := []string{fmt.Sprintf("Page %d of %d", state.Page, state.LastPage(total)), fmt.Sprintf("%d records", total)}
	if shown >= 0 {
		parts = append(parts, fmt.Sprintf("%d shown", shown))
	}
	if filters := state.ActiveFilters(); len(filters) > 0 {
		fs := make([]string, 0, len(filters))
		for _, k := range filters {
			fs = append(fs, fmt.Sprintf("%s=%s", k, state.FieldFilters[k]))
		}
		parts = append(parts, "filters: "+strings.Join(fs, ", "))
	}
	if state.Search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", state.Search))
	}
	return strings.Join(parts, " · ")
}

// Statistics renders the statistic cards in key order.
func Statistics(w io.Writer, stats models.Statistics) {
	if len(stats) == 0 {
		return
	}
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	header := table.Row{}
	values := table.Row{}
	for _, k := range keys {
		header = append(header, strings.ReplaceAll(k, "_", " "))
		values = append(values, stats.String(k))
	}
	t.AppendHeader(header)
	t.AppendRow(values)
	t.Render()
}

func colour(c derive.DateClass) text.Colors {
	switch c {
	case derive.ClassOverdue:
		return text.Colors{text.FgRed}
	case derive.ClassWarning:
		return text.Colors{text.FgYellow}
	case derive.ClassOK:
		return text.Colors{text.FgGreen}
	}
	return text.Colors{}
}

// dateCell formats a nullable date.
func dateCell(d *models.Date) string {
	if d == nil || d.IsZero() {
		return "—"
	}
	return d.String()
}
