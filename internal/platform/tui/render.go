package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/loop"
)

// hudRows is the number of rows above the world.
const hudRows = 1

// WorldSize returns the world size that fits a terminal of w by h cells
// below the HUD.
func WorldSize(w, h int) (int, int) {
	return max(w, 1), max(h-hudRows, 1)
}

// colorStyles maps Color to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault: lipgloss.NewStyle(),
	ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// glyph picks how a sprite is drawn.
func glyph(s core.Sprite) (rune, Color) {
	switch s.Kind {
	case core.KindPlayer:
		return '█', ColorGreen
	case core.KindObstacle:
		switch {
		case s.HP >= 3:
			return '▒', ColorGray
		case s.HP == 2:
			return '▓', ColorOrange
		}
		return '█', ColorBlue
	case core.KindCollectible:
		return '●', ColorYellow
	case core.KindProjectile:
		if s.Shape.Kind == core.ShapeCircle {
			return '●', ColorWhite
		}
		return '│', ColorYellow
	case core.KindEnemy:
		return '▼', ColorRed
	}
	return '?', ColorMagenta
}

// cellSpan converts a world interval to the cells whose centres it covers,
// always at least one.
func cellSpan(lo, hi float64) (int, int) {
	a := int(math.Round(lo))
	b := max(int(math.Round(hi)), a+1)
	return a, b
}

// DrawSprites rasterizes sprites in order; later sprites draw on top.
// Elevated sprites (runner jumps) are lifted by their elevation.
func DrawSprites(dst *Screen, sprites []core.Sprite) {
	for _, s := range sprites {
		r, c := glyph(s)
		bb := s.Shape.Bounds(s.Pos)
		lift := int(math.Round(s.Z))
		x0, x1 := cellSpan(bb.X, bb.Right())
		y0, y1 := cellSpan(bb.Y, bb.Bottom())
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				dst.Set(x, y+hudRows-lift, r, c)
			}
		}
	}
}

// DrawFrame renders one frame: HUD row, world and state overlay.
func DrawFrame(dst *Screen, title string, f loop.Frame, paused bool) {
	dst.Clear()
	DrawSprites(dst, f.Sprites)

	st := f.Status
	hud := fmt.Sprintf(" %s   Score %d   Lives %d   Best %d ", title, st.Score, st.Lives, st.HighScore)
	for x := range dst.Width() {
		dst.Set(x, 0, ' ', ColorDefault)
	}
	dst.DrawText(0, 0, hud, ColorWhite)

	switch {
	case st.State == engine.StateOver:
		head := "GAME OVER"
		if st.Won {
			head = "YOU WIN"
		}
		drawMessage(dst, head, fmt.Sprintf("Score: %d  Best: %d", st.Score, st.HighScore), "r restart  q quit")
	case paused:
		drawMessage(dst, "PAUSED", "p resume", "q quit")
	}
}

// drawMessage draws a message box in the center of the screen.
func drawMessage(dst *Screen, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	boxW, boxH := w+4, len(lines)+2
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2
	dst.DrawBox(x, y, boxW, boxH, ColorWhite)
	for i, l := range lines {
		dst.DrawText(x+(boxW-len([]rune(l)))/2, y+1+i, l, ColorWhite)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
