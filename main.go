package main

import (
	"flag"
	"fmt"

	"github.com/leonelquinteros/gotext"

	"labyrinth/pkg/engine/input"
	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/director"
	"labyrinth/pkg/game/gameplay"
	"labyrinth/pkg/game/generator"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/renderer/tui"
	"labyrinth/pkg/game/setup"
	"labyrinth/pkg/game/state"
)

func initGotext() {
	gotext.Configure("po", "en_US", "labyrinth")
}

func main() {
	mapType := flag.String("type", generator.TypeDungeon, "map type: dungeon or cavern")
	width := flag.Int("width", 51, "map width")
	height := flag.Int("height", 31, "map height")
	useDirector := flag.Bool("director", false, "place the exit strategically and show map metrics")
	minDistance := flag.Int("min-distance", setup.DefaultMinExitDistance, "minimum player-to-exit path distance used by the director")
	seed := flag.Int64("seed", 0, "generation seed, 0 picks a random one")
	analyze := flag.Bool("analyze", false, "print map metrics and exit without starting the game")

	flag.Parse()

	initGotext()

	renderer.SetRenderer(&tui.TUIRenderer{})
	renderer.Init()

	cfg := setup.Config{
		MapType:         *mapType,
		Width:           *width,
		Height:          *height,
		UseDirector:     *useDirector,
		MinExitDistance: *minDistance,
		Seed:            *seed,
	}
	g := setup.NewSession(cfg)

	if *analyze || !terminal.IsInteractive() {
		printAnalysis(g)
		return
	}

	run(g, cfg)
}

// printAnalysis writes the director's metrics for the generated map to
// stdout and returns; used for -analyze and non-terminal runs
func printAnalysis(g *state.Game) {
	d := director.NewDirector(g.Grid)
	m := d.Analyze(g.Player, g.Exit)

	w, h := g.Grid.Dimensions()
	fmt.Printf("%s: %s %dx%d\n", gotext.Get("Map"), g.MapType, w, h)
	fmt.Printf("%s: (%d,%d)  %s: (%d,%d)\n",
		gotext.Get("Player"), g.Player.X, g.Player.Y,
		gotext.Get("Exit"), g.Exit.X, g.Exit.Y)
	fmt.Printf("%s: %d\n", gotext.Get("Path complexity"), m.PathComplexity)
	fmt.Printf("%s: %d\n", gotext.Get("Dead ends"), m.DeadEnds)
	fmt.Printf("%s: %.1f%%\n", gotext.Get("Openness"), m.Openness)
}

// sessionMetrics computes the metrics line shown under the map when the
// director is enabled
func sessionMetrics(g *state.Game) *director.Metrics {
	if !g.UseDirector {
		return nil
	}
	d := director.NewDirector(g.Grid)
	m := d.Analyze(g.Player, g.Exit)
	return &m
}

// commandDirection maps a movement command to its direction.
// ok is false for non-movement commands.
func commandDirection(cmd string) (world.Direction, bool) {
	switch cmd {
	case input.CmdNorth:
		return world.North, true
	case input.CmdSouth:
		return world.South, true
	case input.CmdEast:
		return world.East, true
	case input.CmdWest:
		return world.West, true
	}
	return world.North, false
}

// nextSeed derives the seed for a follow-up map. A zero configured seed
// stays zero so every map is fresh; a fixed seed advances so reruns of the
// same session stay reproducible without repeating the first map.
func nextSeed(cfg setup.Config) int64 {
	if cfg.Seed == 0 {
		return 0
	}
	return cfg.Seed + 1
}

// run drives the interactive loop: render, read one key, apply it
func run(g *state.Game, cfg setup.Config) {
	metrics := sessionMetrics(g)

	for {
		renderer.RenderFrame(g, metrics)

		cmd := input.ReadCommand()

		if dir, ok := commandDirection(cmd); ok {
			if !gameplay.TryMove(g, dir) {
				continue
			}
			if !gameplay.AtExit(g) {
				continue
			}
			cleared := g.MapsCleared + 1
			cfg.Seed = nextSeed(cfg)
			g = setup.NewSession(cfg)
			g.MapsCleared = cleared
			g.AddMessage(gotext.Get("You reached the exit! A new maze awaits."))
			metrics = sessionMetrics(g)
			continue
		}

		switch cmd {
		case input.CmdRegen:
			cleared := g.MapsCleared
			cfg.Seed = nextSeed(cfg)
			g = setup.NewSession(cfg)
			g.MapsCleared = cleared
			metrics = sessionMetrics(g)
		case input.CmdSwitch:
			if cfg.MapType == generator.TypeDungeon {
				cfg.MapType = generator.TypeCavern
			} else {
				cfg.MapType = generator.TypeDungeon
			}
			cleared := g.MapsCleared
			cfg.Seed = nextSeed(cfg)
			g = setup.NewSession(cfg)
			g.MapsCleared = cleared
			metrics = sessionMetrics(g)
		case input.CmdQuit:
			renderer.Clear()
			renderer.ShowMessage(gotext.Get("Thanks for exploring the labyrinth."))
			return
		}
	}
}
