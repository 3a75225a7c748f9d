package ui

import (
	"fmt"
	"strings"
)

// HeaderWidth is the width of the header divider.
const HeaderWidth = 50

// HeaderInfo contains information to display in the header.
type HeaderInfo struct {
	Name    string // e.g. "wslgit-doctor"
	Version string
	WorkDir string // optional
}

// RenderHeader renders the title line, the working directory and a divider.
func (p *Printer) RenderHeader(info HeaderInfo) string {
	var out strings.Builder

	out.WriteString(p.r.NewStyle().Bold(true).Render(info.Name))
	if info.Version != "" {
		out.WriteString(" " + p.style(ColorInfo).Render(info.Version))
	}
	out.WriteString("\n")

	if info.WorkDir != "" {
		out.WriteString(p.style(ColorMuted).Render(info.WorkDir) + "\n")
	}

	out.WriteString(p.style(ColorMuted).Render(strings.Repeat("━", HeaderWidth)) + "\n")
	return out.String()
}

// Header prints the header.
func (p *Printer) Header(info HeaderInfo) {
	fmt.Fprint(p.w, p.RenderHeader(info))
}
