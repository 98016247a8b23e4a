// Package console runs gem cascade sessions headlessly. A virtual clock
// drives the engine and an autoplayer makes the moves, so a run is fully
// reproducible from its seed.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gemcascade/internal/games/gemcascade"
	"github.com/vovakirdan/gemcascade/internal/games/gemcascade/engine"
	"github.com/vovakirdan/gemcascade/internal/registry"
)

// Reasons a run stops.
const (
	ReasonExpired   = "expired"   // the Rush countdown ran out
	ReasonMoves     = "moves"     // the move limit was reached
	ReasonStuck     = "stuck"     // the board offers no action
	ReasonCancelled = "cancelled" // the context was cancelled
)

// RunnerConfig controls the virtual clock and output of a run.
type RunnerConfig struct {
	MaxMoves   int           // 0 plays until the session ends or gets stuck
	ThinkTime  time.Duration // virtual time spent before each move
	StageDelay time.Duration // virtual time each cascade stage takes to present
	TickStep   time.Duration // clock granularity
	ShowBoard  bool          // print the board after every settled move
	Styled     bool          // use colors when printing
}

// DefaultRunnerConfig returns a RunnerConfig with sensible defaults.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		MaxMoves:   50,
		ThinkTime:  2 * time.Second,
		StageDelay: 250 * time.Millisecond,
		TickStep:   time.Second,
	}
}

// Summary is the outcome of a run.
type Summary struct {
	RunID      string
	Variant    string
	Layout     string
	Moves      int
	Bombs      int // moves that detonated a bomb
	Stages     int // cascade stages acknowledged
	Forced     int // cascades completed by the ack timeout
	Reshuffles int
	Hints      int
	Score      int
	Elapsed    time.Duration
	Reason     string
}

// Runner plays a reset game to completion.
type Runner struct {
	game   *gemcascade.Game
	cfg    RunnerConfig
	logger *log.Logger
	out    io.Writer

	clock time.Duration
}

// NewRunner creates a runner for g. A nil logger discards log output and a
// nil out disables board printing.
func NewRunner(g registry.Game, cfg RunnerConfig, logger *log.Logger, out io.Writer) (*Runner, error) {
	game, ok := g.(*gemcascade.Game)
	if !ok {
		return nil, fmt.Errorf("console: unsupported game %q", g.ID())
	}
	if game.Engine() == nil {
		return nil, errors.New("console: game has not been reset")
	}
	if cfg.TickStep <= 0 {
		cfg.TickStep = time.Second
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if out == nil {
		out = io.Discard
	}
	return &Runner{game: game, cfg: cfg, logger: logger, out: out}, nil
}

// Run plays moves until the session ends, the move limit is reached, the
// board is stuck or ctx is cancelled. Engine errors end the run and are
// returned together with the summary so far.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	eng := r.game.Engine()
	sum := Summary{
		RunID:   uuid.NewString(),
		Variant: r.game.ID(),
		Layout:  r.game.Layout(),
	}
	logger := r.logger.With("run", sum.RunID)
	logger.Info("run started", "variant", sum.Variant, "mode", eng.Config().Mode,
		"trigger", eng.Config().BombTrigger, "layout", sum.Layout)

	r.clock = eng.Now()
	r.show(eng, nil)

	err := r.loop(ctx, eng, logger, &sum)

	sum.Score = eng.Session().Score
	sum.Elapsed = r.clock
	if err != nil {
		logger.Error("run failed", "error", err, "moves", sum.Moves)
		return sum, err
	}
	logger.Info("run finished", "reason", sum.Reason, "moves", sum.Moves, "score", sum.Score)
	return sum, nil
}

func (r *Runner) loop(ctx context.Context, eng *engine.Engine, logger *log.Logger, sum *Summary) error {
	for {
		switch {
		case ctx.Err() != nil:
			sum.Reason = ReasonCancelled
			return nil
		case eng.Session().State == engine.StateEnded:
			sum.Reason = ReasonExpired
			return nil
		case r.cfg.MaxMoves > 0 && sum.Moves >= r.cfg.MaxMoves:
			sum.Reason = ReasonMoves
			return nil
		}

		if err := r.think(eng, logger, sum); err != nil {
			return err
		}
		if eng.Session().State == engine.StateEnded {
			continue
		}

		a, ok := gemcascade.ChooseAction(eng)
		if !ok {
			sum.Reason = ReasonStuck
			return nil
		}
		res, err := gemcascade.Play(eng, a)
		if err != nil {
			return err
		}
		if !res.Accepted {
			logger.Warn("move rejected", "move", a.Move, "state", eng.Session().State)
			sum.Reason = ReasonStuck
			return nil
		}

		sum.Moves++
		if res.Bomb {
			sum.Bombs++
		}
		logger.Debug("move played", "n", sum.Moves, "move", describe(a), "gain", a.Gain,
			"score", eng.Session().Score)

		if res.Pending {
			if err := r.resolve(eng, logger, sum); err != nil {
				return err
			}
		}
		r.show(eng, nil)
	}
}

// think advances the clock by ThinkTime, asking for a hint as idle time grows.
func (r *Runner) think(eng *engine.Engine, logger *log.Logger, sum *Summary) error {
	start := r.clock
	hinted := false
	for r.clock-start < r.cfg.ThinkTime {
		if err := r.tick(eng, logger); err != nil {
			return err
		}
		if eng.Session().State == engine.StateEnded {
			return nil
		}
		if hinted {
			continue
		}
		if h, ok := eng.RecordIdle(r.clock - start); ok {
			hinted = true
			sum.Hints++
			logger.Debug("hint", "cell", h.Cell, "move", h.Move, "has_move", h.HasMove)
			r.show(eng, &h.Cell)
		}
	}
	return nil
}

// resolve presents and acknowledges every stage of the cascade in flight.
func (r *Runner) resolve(eng *engine.Engine, logger *log.Logger, sum *Summary) error {
	for eng.Session().State == engine.StateResolving {
		r.clock += r.cfg.StageDelay
		res, err := eng.Tick(r.clock)
		if err != nil {
			return err
		}
		if res.Forced {
			sum.Forced++
			if countShuffles(res.Events) > 0 {
				sum.Reshuffles++
			}
			continue
		}

		st, err := eng.AcknowledgeStageComplete()
		if err != nil {
			return err
		}
		sum.Stages++
		if n := countShuffles(st.Events); n > 0 {
			sum.Reshuffles++
			logger.Debug("board reshuffled", "cells", n)
		}
		if st.Done {
			break
		}
	}
	return nil
}

func (r *Runner) tick(eng *engine.Engine, logger *log.Logger) error {
	r.clock += r.cfg.TickStep
	res, err := eng.Tick(r.clock)
	if err != nil {
		return err
	}
	if res.Expired {
		logger.Debug("countdown expired", "at", r.clock)
	}
	return nil
}

func (r *Runner) show(eng *engine.Engine, mark *engine.Cell) {
	if !r.cfg.ShowBoard {
		return
	}
	grid := eng.Grid()
	fmt.Fprintln(r.out, RenderStatus(eng.Session(), r.cfg.Styled))
	fmt.Fprint(r.out, RenderBoard(grid, r.cfg.Styled, mark))
	fmt.Fprintln(r.out, RenderColors(grid, eng.Config().PaletteSize, r.cfg.Styled))
	fmt.Fprintln(r.out)
}

func countShuffles(events []engine.CascadeEvent) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == engine.EventShuffle {
			n++
		}
	}
	return n
}

func describe(a gemcascade.Action) string {
	if a.Kind == gemcascade.ActionTap {
		return "tap " + a.Cell.String()
	}
	return a.Move.String()
}

// WriteSummary prints a summary as aligned key/value lines.
func WriteSummary(w io.Writer, s Summary) {
	rows := [][2]string{
		{"run", s.RunID},
		{"variant", s.Variant},
		{"layout", s.Layout},
		{"moves", fmt.Sprint(s.Moves)},
		{"bombs", fmt.Sprint(s.Bombs)},
		{"stages", fmt.Sprint(s.Stages)},
		{"forced", fmt.Sprint(s.Forced)},
		{"reshuffles", fmt.Sprint(s.Reshuffles)},
		{"hints", fmt.Sprint(s.Hints)},
		{"score", fmt.Sprint(s.Score)},
		{"elapsed", s.Elapsed.String()},
		{"stopped", s.Reason},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(w, "  %-10s  %s\n", row[0], row[1])
	}
}
