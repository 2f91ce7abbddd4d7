package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/aerohr/console/pkg/derive"
)

// Leaves renders the updates view: personal messages first, then one row per
// leave type with the names of colleagues away.
func Leaves(w io.Writer, summaries []derive.LeaveWindowSummary) {
	for _, s := range summaries {
		fmt.Fprintf(w, "On leave %s (%s", s.Window.Label, s.Window.From)
		if !s.Window.From.Equal(s.Window.To.Time) {
			fmt.Fprintf(w, " – %s", s.Window.To)
		}
		fmt.Fprintln(w, ")")
		for _, m := range s.Messages {
			fmt.Fprintf(w, "  🌴 %s\n", m)
		}
		if len(s.Groups) == 0 {
			fmt.Fprintln(w, "  Everyone is available")
			continue
		}
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Leave Type", "Count", "Employees"})
		for _, g := range s.Groups {
			names := make([]string, 0, len(g.Leaves))
			for _, l := range g.Leaves {
				names = append(names, fmt.Sprintf("%s (%s → %s)", l.EmployeeName, l.FromDate, l.ToDate))
			}
			t.AppendRow(table.Row{g.LeaveType, g.Count, strings.Join(names, "\n")})
		}
		t.Render()
	}
}
