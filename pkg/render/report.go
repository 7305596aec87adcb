package render

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// BindingTable renders the uniform bindings as a text table.
func BindingTable(bindings []Binding) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Uniform", "Location", "Status"})
	for _, b := range bindings {
		status := "bound"
		location := fmt.Sprintf("%d", b.Location)
		if !b.Resolved() {
			status = "not found"
			location = "-"
		}
		table.Append([]string{b.Name, location, status})
	}
	table.Render()

	return buf.String()
}

// StatsTable renders session stats as a text table.
func StatsTable(stats Stats) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames", "Clock", "Terminated by", "Released"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Frames),
		fmt.Sprintf("%.2f", stats.Elapsed),
		stats.Reason.String(),
		fmt.Sprintf("%d", len(stats.Released)),
	})
	table.Render()

	return buf.String()
}
