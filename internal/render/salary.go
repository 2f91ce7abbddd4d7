package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/aerohr/console/pkg/models"
)

// Salary renders a salary breakdown as a two-column statement.
func Salary(w io.Writer, b models.SalaryBreakdown) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Component", "Amount"})
	t.AppendRows([]table.Row{
		{"Basic", money(b.Basic)},
		{"HRA", money(b.HRA)},
		{"DA", money(b.DA)},
		{"Other allowances", money(b.Other)},
	})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Gross", money(b.Gross)})
	t.AppendRows([]table.Row{
		{"PF", deduction(b.PF)},
		{"ESI", deduction(b.ESI)},
	})
	t.AppendFooter(table.Row{"Net", money(b.Net)})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight}})
	t.Render()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func deduction(v float64) string {
	if v == 0 {
		return money(0)
	}
	return "-" + money(v)
}
