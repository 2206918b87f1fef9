// Package report renders computed observation state as text and JSON.
//
// Writers never run compute stages. A stage that has not run, or whose
// result no longer matches the observation's site, target and time, is
// shown as an explanatory line instead of numbers. The only errors
// returned come from the underlying writer.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-nightsky/internal/observation"
)

// ruleWidth is the width of horizontal rules.
const ruleWidth = 72

// Styles holds the text styles used by the writers.
type Styles struct {
	Enabled bool
	Heading lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Warn    lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles returns colored styles when color is true, plain ones otherwise.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{Heading: plain, Label: plain, Value: plain, Warn: plain, Dim: plain}
	}
	return Styles{
		Enabled: true,
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// printer keeps the first write error so callers can format freely.
type printer struct {
	w   io.Writer
	st  Styles
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) heading(s string) {
	p.printf("%s\n", p.st.Heading.Render(s))
}

func (p *printer) rule() {
	p.printf("%s\n", p.st.Dim.Render(strings.Repeat("─", ruleWidth)))
}

// field prints "label value" with the label padded to width.
func (p *printer) field(label string, width int, value string) {
	p.printf("%s %s\n", p.st.Label.Render(fmt.Sprintf("%-*s", width, label)), p.st.Value.Render(value))
}

// unavailable explains why a stage's values are not shown.
func (p *printer) unavailable(what string, err error) {
	var msg string
	switch {
	case errors.Is(err, observation.ErrStale):
		msg = what + " is stale; site, target or time changed since it was computed"
	default:
		msg = what + " not computed"
	}
	p.printf("%s\n", p.st.Warn.Render(msg))
}

// signed renders v with an explicit sign.
func signed(v float64, prec int) string {
	return fmt.Sprintf("%+.*f", prec, v)
}
