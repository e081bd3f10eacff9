// Package console styles gosolid's terminal output.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes plain or styled lines to an output stream.
type Printer struct {
	out   io.Writer
	color bool

	heading  lipgloss.Style
	errStyle lipgloss.Style
	okStyle  lipgloss.Style
	muted    lipgloss.Style
}

// New returns a Printer. Styling is off when color is false or NO_COLOR is set.
func New(out io.Writer, color bool) *Printer {
	if os.Getenv("NO_COLOR") != "" {
		color = false
	}
	return &Printer{
		out:      out,
		color:    color,
		heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		errStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		okStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		muted:    lipgloss.NewStyle().Faint(true),
	}
}

// Writer returns the underlying stream for unstyled output.
func (p *Printer) Writer() io.Writer { return p.out }

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Heading prints a bold section heading.
func (p *Printer) Heading(text string) {
	fmt.Fprintln(p.out, p.render(p.heading, text))
}

// Error prints a line in the error color.
func (p *Printer) Error(text string) {
	fmt.Fprintln(p.out, p.render(p.errStyle, text))
}

// Success prints a line in the success color.
func (p *Printer) Success(text string) {
	fmt.Fprintln(p.out, p.render(p.okStyle, text))
}

// Muted prints a faint secondary line.
func (p *Printer) Muted(text string) {
	fmt.Fprintln(p.out, p.render(p.muted, text))
}

// Line prints text without styling.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.out, text)
}

// Table renders rows as aligned columns.
func (p *Printer) Table(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]+2-lipgloss.Width(cell)))
			}
		}
		fmt.Fprintln(p.out, b.String())
	}
}
