package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gemcascade/internal/games/gemcascade/engine"
)

// constSource always returns v, even when v is outside [0, n).
type constSource struct{ v int }

func (s constSource) IntN(int) int { return s.v }

// background fills a board so that no two orthogonal neighbours share a
// color: cell (r, c) gets colors[(2r+c) % len(colors)]. With five colors no
// single swap can form a run either.
func background(rows, cols int, colors ...engine.Color) engine.Layout {
	l := make(engine.Layout, rows)
	for r := range l {
		l[r] = make([]engine.LayoutCell, cols)
		for c := range l[r] {
			l[r][c] = engine.LayoutCell{Color: colors[(2*r+c)%len(colors)]}
		}
	}
	return l
}

// quiet is the five-color background without color 3.
func quiet() engine.Layout {
	return background(10, 10, 0, 1, 2, 4, 5)
}

func paint(l engine.Layout, color engine.Color, cells ...engine.Cell) engine.Layout {
	for _, c := range cells {
		l[c.Row][c.Col] = engine.LayoutCell{Color: color}
	}
	return l
}

func bomb(l engine.Layout, color engine.Color, c engine.Cell) engine.Layout {
	l[c.Row][c.Col] = engine.LayoutCell{Color: color, Bomb: true}
	return l
}

func testConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.AckTimeout = 0
	return cfg
}

func newEngine(t *testing.T, cfg engine.Config, l engine.Layout, seed int64) *engine.Engine {
	t.Helper()
	opts := []engine.Option{engine.WithSource(engine.NewRandSource(seed))}
	if l != nil {
		opts = append(opts, engine.WithLayout(l))
	}
	e, err := engine.New(cfg, opts...)
	require.NoError(t, err)
	return e
}

// settle acknowledges stages until the cascade is done and returns the
// total score awarded by the acknowledged stages.
func settle(t *testing.T, e *engine.Engine) int {
	t.Helper()
	total := 0
	for i := 0; i < 1000; i++ {
		st, err := e.AcknowledgeStageComplete()
		require.NoError(t, err)
		total += st.ScoreDelta
		if st.Done {
			return total
		}
	}
	t.Fatal("cascade did not settle")
	return total
}

func eventsOf(events []engine.CascadeEvent, kind engine.EventKind) []engine.CascadeEvent {
	var out []engine.CascadeEvent
	for _, ev := range events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func cells(rc ...int) []engine.Cell {
	out := make([]engine.Cell, 0, len(rc)/2)
	for i := 0; i+1 < len(rc); i += 2 {
		out = append(out, engine.At(rc[i], rc[i+1]))
	}
	return out
}
