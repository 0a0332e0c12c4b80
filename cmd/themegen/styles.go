package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles renders status lines. Colors follow the output stream's terminal
// capabilities, so redirected output stays plain.
type styles struct {
	header  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

func (s styles) headerLine(msg string) string  { return s.header.Render(msg) }
func (s styles) successLine(msg string) string { return s.success.Render("✓ " + msg) }
func (s styles) warningLine(msg string) string { return s.warning.Render("! " + msg) }
func (s styles) errorLine(msg string) string   { return s.failure.Render(msg) }
