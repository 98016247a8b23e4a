package gemcascade

import (
	"github.com/vovakirdan/gemcascade/internal/games/gemcascade/engine"
)

// ActionKind identifies what the autoplayer wants to do.
type ActionKind uint8

const (
	ActionSwap ActionKind = iota // select Move.A then Move.B
	ActionTap                    // select Cell alone to detonate a bomb
)

// Action is one autoplayer decision. Gain is the number of cells the first
// pass would clear.
type Action struct {
	Kind ActionKind
	Move engine.Move
	Cell engine.Cell
	Gain int
}

// Board is the read-only view the autoplayer needs.
type Board interface {
	Grid() *engine.Grid
	Config() engine.Config
}

// ChooseAction picks the action with the largest immediate clear, preferring
// earlier candidates on ties: bombs first, then swaps in row-major order.
// Returns false when the board offers nothing to do.
func ChooseAction(b Board) (Action, bool) {
	g := b.Grid()
	cfg := b.Config()

	best := Action{Gain: -1}
	consider := func(a Action) {
		if a.Gain > best.Gain {
			best = a
		}
	}

	for _, bc := range g.Bombs() {
		tok, _ := g.Get(bc)
		if cfg.BombTrigger.OnTap() {
			consider(Action{Kind: ActionTap, Cell: bc, Gain: len(engine.BombClearSet(g, bc, tok.Color))})
		}
		if !cfg.BombTrigger.OnSwap() {
			continue
		}
		for _, n := range neighbours(g, bc) {
			partner, _ := g.Get(n)
			consider(Action{
				Kind: ActionSwap,
				Move: engine.Move{A: bc, B: n},
				Gain: len(engine.BombClearSet(g, bc, partner.Color)),
			})
		}
	}

	for _, m := range engine.FindMoves(g) {
		if cfg.BombTrigger.OnSwap() && (isBomb(g, m.A) || isBomb(g, m.B)) {
			continue
		}
		work := g.Clone()
		work.Swap(m.A, m.B)
		consider(Action{Kind: ActionSwap, Move: m, Gain: len(engine.Detect(work))})
	}

	if best.Gain < 0 {
		return Action{}, false
	}
	return best, true
}

// Play performs the action through the selection state machine.
func Play(eng *engine.Engine, a Action) (engine.MoveResult, error) {
	if a.Kind == ActionTap {
		return eng.SelectSingle(a.Cell.Row, a.Cell.Col)
	}
	res, err := eng.Select(a.Move.A.Row, a.Move.A.Col)
	if err != nil || !res.Accepted {
		return res, err
	}
	return eng.Select(a.Move.B.Row, a.Move.B.Col)
}

func neighbours(g *engine.Grid, c engine.Cell) []engine.Cell {
	var out []engine.Cell
	for _, n := range [4]engine.Cell{
		engine.At(c.Row-1, c.Col),
		engine.At(c.Row+1, c.Col),
		engine.At(c.Row, c.Col-1),
		engine.At(c.Row, c.Col+1),
	} {
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

func isBomb(g *engine.Grid, c engine.Cell) bool {
	tok, ok := g.Get(c)
	return ok && tok.IsBomb()
}
