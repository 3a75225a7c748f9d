package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderTable renders a bordered, non-interactive table.
func (p *Printer) RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	cell := p.r.NewStyle().Padding(0, 1)
	header := cell.Bold(true)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.style(ColorMuted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 {
				return header
			}
			return cell
		})
	return t.String()
}

// Table prints a table followed by a newline.
func (p *Printer) Table(headers []string, rows [][]string) {
	if s := p.RenderTable(headers, rows); s != "" {
		fmt.Fprintln(p.w, s)
	}
}
