// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/enver/enver/internal/envfile"
)

// Column headers of the entries table.
const (
	HeaderName  = "VARIABLE NAME"
	HeaderValue = "VARIABLE VALUE"
)

// columnGap is the space between unbordered columns.
const columnGap = 2

// TableOptions configures RenderTable.
type TableOptions struct {
	// Headers are the column titles.
	Headers []string
	// Rows contains the table data.
	Rows [][]string
	// Border selects the outer and inner border; BorderNone (or "")
	// renders plain columns separated by spaces.
	Border BorderStyle
	// HeaderStyle is applied to header cells.
	HeaderStyle lipgloss.Style
	// BorderColor styles the border characters.
	BorderColor lipgloss.Style
}

// RenderTable renders the rows as an aligned table. The result has no
// trailing newline.
func RenderTable(opts TableOptions) string {
	t := table.New().
		Headers(opts.Headers...).
		Rows(opts.Rows...)

	if !opts.Border.drawn() {
		lastCol := len(opts.Headers) - 1
		t = t.Border(lipgloss.HiddenBorder()).
			BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false).
			BorderHeader(false).
			BorderColumn(false).
			BorderRow(false).
			StyleFunc(func(row, col int) lipgloss.Style {
				s := lipgloss.NewStyle()
				if row == table.HeaderRow {
					s = opts.HeaderStyle
				}
				if col < lastCol {
					s = s.PaddingRight(columnGap)
				}
				return s
			})
		return trimTrailingSpace(t.Render())
	}

	return t.Border(opts.Border.lipglossBorder()).
		BorderStyle(opts.BorderColor).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return opts.HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}

// EntriesTable renders entries under the VARIABLE NAME / VARIABLE VALUE
// header in the given order, duplicates included. Headers and Rows in opts
// are replaced.
func EntriesTable(entries []envfile.Entry, opts TableOptions) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Name, e.Value})
	}
	opts.Headers = []string{HeaderName, HeaderValue}
	opts.Rows = rows
	return RenderTable(opts)
}

// trimTrailingSpace drops the padding lipgloss adds after the last column,
// so plain rows end at their value.
func trimTrailingSpace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
