package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable renders data as a boxed table whose first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to render table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// KeyValues renders label/value pairs as a two column table.
func KeyValues(header [2]string, rows [][2]string, writer io.Writer) {
	data := make([][]string, 0, len(rows)+1)
	data = append(data, header[:])

	for _, r := range rows {
		data = append(data, []string{r[0], r[1]})
	}

	PrintTable(data, writer)
}
