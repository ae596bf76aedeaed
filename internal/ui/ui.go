// Package ui renders the wizard's console output. Styles are bound to the
// destination writer so colors are only emitted when it is a terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console writes styled lines to a single writer.
type Console struct {
	w       io.Writer
	title   lipgloss.Style
	err     lipgloss.Style
	notice  lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
}

// New returns a Console that writes to w.
func New(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:       w,
		title:   r.NewStyle().Bold(true),
		err:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("10")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		muted:   r.NewStyle().Faint(true),
	}
}

// Writer returns the underlying writer.
func (c *Console) Writer() io.Writer { return c.w }

// Title prints a bold line preceded by a blank line.
func (c *Console) Title(format string, a ...any) {
	c.line(c.title, format, a...)
}

// Error prints a red, bold line preceded by a blank line.
func (c *Console) Error(format string, a ...any) {
	c.line(c.err, format, a...)
}

// Notice prints a green line preceded by a blank line.
func (c *Console) Notice(format string, a ...any) {
	c.line(c.notice, format, a...)
}

// Success prints a green, bold line preceded by a blank line.
func (c *Console) Success(format string, a ...any) {
	c.line(c.success, format, a...)
}

// Plain prints an unstyled line.
func (c *Console) Plain(format string, a ...any) {
	fmt.Fprintf(c.w, format+"\n", a...)
}

// Muted prints a dimmed, indented line.
func (c *Console) Muted(format string, a ...any) {
	fmt.Fprintln(c.w, "  "+c.muted.Render(fmt.Sprintf(format, a...)))
}

func (c *Console) line(s lipgloss.Style, format string, a ...any) {
	fmt.Fprintf(c.w, "\n%s\n", s.Render(fmt.Sprintf(format, a...)))
}
