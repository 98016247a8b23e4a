package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gemcascade/internal/games/gemcascade/engine"
)

// colorStyles maps palette indexes to lipgloss styles.
var colorStyles = [engine.MaxPalette]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
}

var (
	bombStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hintStyle   = lipgloss.NewStyle().Underline(true)
	statusStyle = lipgloss.NewStyle().Bold(true)
)

// cellWidth fits the widest cell text ("b9").
const cellWidth = 2

// RenderBoard converts a grid to a string, one row per line.
// Plain output is the fixture notation; styled output pads cells to a fixed
// width and colors them by palette index. mark, if non-nil, is underlined.
func RenderBoard(g *engine.Grid, styled bool, mark *engine.Cell) string {
	if !styled {
		return g.String()
	}

	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := engine.At(r, c)
			text := fmt.Sprintf("%*s", cellWidth, engine.CellText(g, cell))
			style := cellStyle(g, cell)
			if mark != nil && *mark == cell {
				style = style.Inherit(hintStyle)
			}
			sb.WriteString(style.Render(text))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cellStyle(g *engine.Grid, c engine.Cell) lipgloss.Style {
	tok, ok := g.Get(c)
	if !ok {
		return emptyStyle
	}
	style := lipgloss.NewStyle()
	if int(tok.Color) < len(colorStyles) {
		style = colorStyles[tok.Color]
	}
	if tok.IsBomb() {
		style = style.Inherit(bombStyle)
	}
	return style
}

// RenderColors returns a one-line count of tokens per palette color, each
// count styled in its color.
func RenderColors(g *engine.Grid, palette int, styled bool) string {
	parts := make([]string, 0, palette)
	for color, n := range g.ColorCounts(palette) {
		part := fmt.Sprintf("%d:%d", color, n)
		if styled && color < len(colorStyles) {
			part = colorStyles[color].Render(part)
		}
		parts = append(parts, part)
	}
	return "colors " + strings.Join(parts, " ")
}

// RenderStatus returns a one-line session summary.
func RenderStatus(s engine.Session, styled bool) string {
	line := fmt.Sprintf("%s  score %d  state %s", s.Mode, s.Score, s.State)
	if s.Mode == engine.ModeRush {
		line += fmt.Sprintf("  time %s", s.TimeRemaining.Round(time.Second))
	}
	if styled {
		return statusStyle.Render(line)
	}
	return line
}
