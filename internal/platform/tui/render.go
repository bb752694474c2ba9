package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colourgrid/internal/core"
)

// halfBlock draws the top pixel as foreground and the bottom pixel as background.
const halfBlock = '▀'

// pixelPair is the colour content of one terminal cell.
type pixelPair struct {
	top, bottom color.RGBA
}

// RenderScreen converts the first rows*2 pixel rows of a Screen into styled
// half-block text, two pixel rows per terminal row.
// Groups adjacent cells with the same colours to minimize escape sequences.
func RenderScreen(s *core.Screen, rows int) string {
	rows = core.Clamp(rows, 0, (s.Height()+1)/2)
	styles := make(map[pixelPair]lipgloss.Style)

	var sb strings.Builder
	sb.Grow(s.Width()*rows*4 + rows)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := pairAt(s, x, row)

			// Collect consecutive cells with the same colours
			n := 0
			for x < s.Width() && pairAt(s, x, row) == start {
				n++
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(hexColor(start.top)).
					Background(hexColor(start.bottom))
				styles[start] = style
			}
			sb.WriteString(style.Render(strings.Repeat(string(halfBlock), n)))
		}
	}
	return sb.String()
}

// pairAt returns the 8-bit colours of the two pixels behind terminal cell (x, row).
func pairAt(s *core.Screen, x, row int) pixelPair {
	return pixelPair{
		top:    s.Get(x, row*2).RGBA8(),
		bottom: s.Get(x, row*2+1).RGBA8(),
	}
}

// hexColor converts an 8-bit colour to a lipgloss truecolor value.
func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
