// Package gemcascade wires the engine into the platform: it registers the
// game variants, maps YAML configuration onto the engine and provides the
// autoplayer used for headless sessions.
package gemcascade

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gemcascade/internal/config"
	"github.com/vovakirdan/gemcascade/internal/core"
	"github.com/vovakirdan/gemcascade/internal/games/gemcascade/engine"
	"github.com/vovakirdan/gemcascade/internal/games/gemcascade/layouts"
	"github.com/vovakirdan/gemcascade/internal/registry"
)

// Variant is a registered combination of mode and bomb trigger.
type Variant struct {
	ID      string
	Title   string
	Mode    engine.Mode
	Trigger string // empty keeps the configured trigger
}

var variants = []Variant{
	{ID: "rush", Title: "Gem Cascade: Rush", Mode: engine.ModeRush},
	{ID: "endless", Title: "Gem Cascade: Endless", Mode: engine.ModeEndless},
	{ID: "rush_tap", Title: "Gem Cascade: Rush (tap bombs)", Mode: engine.ModeRush, Trigger: "direct_tap"},
	{ID: "endless_tap", Title: "Gem Cascade: Endless (tap bombs)", Mode: engine.ModeEndless, Trigger: "direct_tap"},
}

// Variants returns the registered variants.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

func init() {
	for _, v := range variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game adapts an engine session to the registry interface.
type Game struct {
	variant Variant
	eng     *engine.Engine
	layout  string // ID of the layout in use, if any
}

// New creates a game for the given variant. Call Reset before use.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name.
func (g *Game) Title() string { return g.variant.Title }

// Variant returns the variant this game plays.
func (g *Game) Variant() Variant { return g.variant }

// Layout returns the ID of the fixed layout in use, or "".
func (g *Game) Layout() string { return g.layout }

// Reset loads configuration, applies the difficulty preset and the variant,
// and starts a new session. The engine is seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig, logger *log.Logger) error {
	gc, err := config.LoadGemcascade(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("gemcascade: %w", err)
	}
	if cfg.Difficulty != "" {
		preset, err := config.ParsePreset(cfg.Difficulty)
		if err != nil {
			return fmt.Errorf("gemcascade: %w", err)
		}
		config.ApplyGemcascadePreset(&gc, preset)
	}

	ecfg, err := EngineConfig(gc)
	if err != nil {
		return fmt.Errorf("gemcascade: %w", err)
	}
	ecfg.Mode = g.variant.Mode
	if g.variant.Trigger != "" {
		if ecfg.BombTrigger, err = engine.ParseBombTrigger(g.variant.Trigger); err != nil {
			return fmt.Errorf("gemcascade: %w", err)
		}
	}

	opts := []engine.Option{
		engine.WithSource(engine.NewRandSource(cfg.Seed)),
		engine.WithLogger(logger),
	}
	g.layout = ""
	if cfg.LayoutPath != "" {
		lay, err := layouts.LoadFile(cfg.LayoutPath)
		if err != nil {
			return fmt.Errorf("gemcascade: %w", err)
		}
		ecfg = lay.Configure(ecfg)
		opts = append(opts, engine.WithLayout(lay.Cells))
		g.layout = lay.ID
	}

	eng, err := engine.New(ecfg, opts...)
	if err != nil {
		return fmt.Errorf("gemcascade: %w", err)
	}
	g.eng = eng
	return nil
}

// Engine returns the engine driving the current session.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	s := g.eng.Session()
	return core.GameState{
		Score:     s.Score,
		GameOver:  s.State == engine.StateEnded,
		Paused:    s.State == engine.StatePaused,
		Resolving: s.State == engine.StateResolving,
	}
}

// EngineConfig maps a validated YAML configuration onto engine parameters.
func EngineConfig(gc config.GemcascadeConfig) (engine.Config, error) {
	if err := gc.Validate(); err != nil {
		return engine.Config{}, err
	}
	mode, err := engine.ParseMode(gc.Session.Mode)
	if err != nil {
		return engine.Config{}, err
	}
	trigger, err := engine.ParseBombTrigger(gc.Bomb.Trigger)
	if err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		Rows:                gc.Board.Rows,
		Cols:                gc.Board.Cols,
		PaletteSize:         gc.Board.PaletteSize,
		Mode:                mode,
		BombTrigger:         trigger,
		RushDuration:        gc.Session.RushDuration,
		IdleHintAfter:       gc.Session.IdleHintAfter,
		MaxPasses:           gc.Cascade.MaxPasses,
		AckTimeout:          gc.Cascade.AckTimeout,
		ReshuffleOnDeadlock: gc.Cascade.ReshuffleOnDeadlock,
	}, nil
}
