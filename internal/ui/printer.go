package ui

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/wslgit/internal/errors"
	"golang.org/x/term"
)

// Printer writes styled messages to one writer.
type Printer struct {
	w io.Writer
	r *lipgloss.Renderer
}

// NewPrinter returns a Printer for w. Colors are used only when w is a
// terminal with color support.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(ColorProfile(w))
	return &Printer{w: w, r: r}
}

// ColorProfile detects the color support of w. Anything that is not a
// terminal gets termenv.Ascii.
func ColorProfile(w io.Writer) termenv.Profile {
	if !IsTerminal(w) {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) style(c lipgloss.Color) lipgloss.Style {
	return p.r.NewStyle().Foreground(c)
}

// RenderError formats err the same way errors.Error does, with color.
func (p *Printer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	var wgErr *errors.Error
	if !stderrors.As(err, &wgErr) {
		b.WriteString(p.style(ColorError).Render(SymbolFail+" "+err.Error()) + "\n")
		return b.String()
	}

	b.WriteString(p.style(ColorError).Bold(true).Render(SymbolFail+" "+wgErr.Message) + "\n")
	if wgErr.Cause != nil {
		b.WriteString("\n" + indent(p.style(ColorMuted).Render(wgErr.Cause.Error())) + "\n")
	}
	if wgErr.Suggestion != "" {
		b.WriteString("\n" + indent(wgErr.Suggestion) + "\n")
	}
	return b.String()
}

// Error prints err.
func (p *Printer) Error(err error) {
	fmt.Fprint(p.w, p.RenderError(err))
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.w, p.style(ColorWarning).Render(SymbolWarning+" "+msg))
}

// Check prints one doctor check result with an optional detail line.
func (p *Printer) Check(ok bool, label, detail string) {
	if ok {
		p.Status(SymbolSuccess, ColorSuccess, label, detail)
		return
	}
	p.Status(SymbolFail, ColorError, label, detail)
}

// Status prints label after a colored symbol. detail is indented below it,
// muted.
func (p *Printer) Status(symbol string, c lipgloss.Color, label, detail string) {
	fmt.Fprintf(p.w, "%s %s\n", p.style(c).Render(symbol), label)
	if detail == "" {
		return
	}
	// per line, Render would pad lines to a common width
	muted := p.style(ColorMuted)
	lines := strings.Split(strings.TrimRight(detail, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = muted.Render(l)
		}
	}
	fmt.Fprintln(p.w, indent(strings.Join(lines, "\n")))
}

// Title prints a bold line.
func (p *Printer) Title(s string) {
	fmt.Fprintln(p.w, p.r.NewStyle().Bold(true).Render(s))
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "  " + l
		}
	}
	return strings.Join(lines, "\n")
}
