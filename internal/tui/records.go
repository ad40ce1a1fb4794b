package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/zfake/internal/identity"
)

// fixed column widths; the address column takes the remaining space
const (
	colNum     = 5
	colID      = 36
	colName    = 24
	colPhone   = 20
	colAddress = 44
	colPadding = 10
)

var columnTitles = []string{"#", "ID", "Name", "Address", "Phone"}

func newRecordTable() table.Model {
	t := table.New(
		table.WithColumns(recordColumns(0)),
		table.WithHeight(20),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true).
		Foreground(zstyle.ZburnAccent)
	s.Selected = s.Selected.Bold(true).Foreground(zstyle.ZburnAccent)
	t.SetStyles(s)
	return t
}

// recordColumns sizes the columns for a terminal width. Zero keeps the
// defaults.
func recordColumns(width int) []table.Column {
	address := colAddress
	if width > 0 {
		address = max(width-colNum-colID-colName-colPhone-colPadding, 16)
	}
	return []table.Column{
		{Title: columnTitles[0], Width: colNum},
		{Title: columnTitles[1], Width: colID},
		{Title: columnTitles[2], Width: colName},
		{Title: columnTitles[3], Width: address},
		{Title: columnTitles[4], Width: colPhone},
	}
}

func recordRows(users []identity.User) []table.Row {
	rows := make([]table.Row, len(users))
	for i, u := range users {
		rows[i] = table.Row{strconv.Itoa(i + 1), u.ID, u.Name, u.Address, u.Phone}
	}
	return rows
}

// recordText formats a table row for the clipboard.
func recordText(row table.Row) string {
	var b strings.Builder
	for i, v := range row {
		if i == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", strings.ToLower(columnTitles[i]), v)
	}
	return b.String()
}

func statusLine(records, page int, loading bool) string {
	s := fmt.Sprintf("%d records  page %d", records, page)
	if loading {
		s += "  loading…"
	}
	return s
}
