// Package tui renders the game to the terminal with ANSI colors.
package tui

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/director"
	"labyrinth/pkg/game/state"
)

// Icon constants for the labyrinth
const (
	IconWall   = "#"
	IconFloor  = "."
	IconPlayer = "@"
	IconExit   = ">"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall    color.Style
	colorFloor   color.Style
	colorPlayer  color.Style
	colorExit    color.Style
	colorTitle   color.Style
	colorMetrics color.Style
	colorSubtle  color.Style
}

// Init sets up the color styles
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgWhite}
	t.colorPlayer = color.Style{color.FgGreen, color.OpBold}
	t.colorExit = color.Style{color.FgYellow, color.OpBold}
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	t.colorMetrics = color.Style{color.FgMagenta}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	// Cursor home + full erase; avoids shelling out to clear(1)
	fmt.Print("\x1b[H\x1b[2J")
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game, metrics *director.Metrics) {
	t.Clear()

	title := fmt.Sprintf("%s — %s", gotext.Get("The Labyrinth of Chaos"), g.MapType)
	fmt.Println(t.colorTitle.Sprint(title))
	fmt.Println()

	t.renderMap(g)
	fmt.Println()

	if metrics != nil {
		t.renderMetrics(metrics)
	}

	fmt.Printf("%s: %d  %s: (%d,%d)\n",
		gotext.Get("Maps cleared"), g.MapsCleared,
		gotext.Get("Position"), g.Player.X, g.Player.Y)

	for _, msg := range g.Messages {
		fmt.Println(msg)
	}

	hint := gotext.Get("Move: WASD/arrows  r: new map  m: switch type  q: quit")
	fmt.Println(t.colorSubtle.Sprint(hint))
}

// renderMap draws the grid with the player and exit overlaid
func (t *TUIRenderer) renderMap(g *state.Game) {
	w, h := g.Grid.Dimensions()
	var row strings.Builder
	for y := 0; y < h; y++ {
		row.Reset()
		for x := 0; x < w; x++ {
			pos := world.Coord{X: x, Y: y}
			switch {
			case pos == g.Player:
				row.WriteString(t.colorPlayer.Sprint(IconPlayer))
			case pos == g.Exit:
				row.WriteString(t.colorExit.Sprint(IconExit))
			case g.Grid.IsFloor(x, y):
				row.WriteString(t.colorFloor.Sprint(IconFloor))
			default:
				row.WriteString(t.colorWall.Sprint(IconWall))
			}
		}
		fmt.Println(row.String())
	}
}

// renderMetrics prints the director's analysis line
func (t *TUIRenderer) renderMetrics(m *director.Metrics) {
	pathText := fmt.Sprintf("%d", m.PathComplexity)
	if m.PathComplexity == director.NoPath {
		pathText = gotext.Get("unreachable")
	}
	line := fmt.Sprintf("%s: %s  %s: %d  %s: %.1f%%",
		gotext.Get("Path complexity"), pathText,
		gotext.Get("Dead ends"), m.DeadEnds,
		gotext.Get("Openness"), m.Openness)
	fmt.Println(t.colorMetrics.Sprint(line))
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Println(msg)
}

// FitsTerminal reports whether the given map size fits the terminal
func (t *TUIRenderer) FitsTerminal(mapWidth, mapHeight int) bool {
	return terminal.FitsMap(mapWidth, mapHeight)
}
