package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors share one styled run.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	styles := make(map[colorPair]lipgloss.Style)
	styleFor := func(p colorPair) lipgloss.Style {
		if st, ok := styles[p]; ok {
			return st
		}
		st := r.NewStyle()
		if n := p.fg.ANSI(); n >= 0 {
			st = st.Foreground(lipgloss.Color(strconv.Itoa(n)))
		}
		if n := p.bg.ANSI(); n >= 0 {
			st = st.Background(lipgloss.Color(strconv.Itoa(n)))
		}
		styles[p] = st
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{cell.Fg, cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Fg, cell.Bg}) != pair {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(pair).Render(run.String()))
		}
	}
	return sb.String()
}
