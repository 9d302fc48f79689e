package render

import (
	"strings"

	"cgol-verify/internal/core"
	"cgol-verify/internal/verify"

	"github.com/charmbracelet/lipgloss"
)

const (
	aliveGlyph = "▮"
	deadGlyph  = "⋅"
)

// Terminal renders grids and verdicts as text. With colour disabled the
// output is plain ASCII: '#' and '.' cells and unstyled banners.
type Terminal struct {
	color bool

	alive lipgloss.Style
	dead  lipgloss.Style
	pass  lipgloss.Style
	fail  lipgloss.Style
	label lipgloss.Style
}

// NewTerminal returns a renderer; color selects glyphs and ANSI styling.
func NewTerminal(color bool) *Terminal {
	t := &Terminal{color: color}
	if !color {
		return t
	}
	t.alive = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	t.dead = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	t.pass = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	t.fail = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	t.label = lipgloss.NewStyle().Faint(true)
	return t
}

// Grid renders g one line per row.
func (t *Terminal) Grid(g *core.Grid) string {
	if !t.color {
		return g.String()
	}
	on := t.alive.Render(aliveGlyph)
	off := t.dead.Render(deadGlyph)
	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Alive(r, c) {
				sb.WriteString(on)
			} else {
				sb.WriteString(off)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Verdict renders the pass/fail banner.
func (t *Terminal) Verdict(v verify.Verdict) string {
	if v.Matched() {
		return t.pass.Render(v.Summary())
	}
	return t.fail.Render(v.Summary())
}

// Parameters renders a run summary.
func (t *Terminal) Parameters(s core.ParameterSnapshot) string {
	var sb strings.Builder
	for _, g := range s.Groups {
		if g.Name != "" {
			sb.WriteString(t.label.Render(g.Name))
			sb.WriteByte('\n')
		}
		for _, p := range g.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			sb.WriteString("  ")
			sb.WriteString(t.label.Render(label + ":"))
			sb.WriteByte(' ')
			sb.WriteString(p.Value)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
