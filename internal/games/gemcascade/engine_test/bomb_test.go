package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gemcascade/internal/games/gemcascade/engine"
)

// bombBoard has a bomb of color 5 at (0,0) and exactly five tokens of
// color 2, one of them its right neighbour.
func bombBoard() engine.Layout {
	l := background(10, 10, 0, 1, 3, 4)
	l = paint(l, 2, cells(0, 1, 3, 3, 5, 7, 7, 2, 9, 9)...)
	return bomb(l, 5, engine.At(0, 0))
}

func bombConfig(trigger engine.BombTrigger) engine.Config {
	cfg := testConfig()
	cfg.BombTrigger = trigger
	return cfg
}

func TestBombSwapClearsPartnerColor(t *testing.T) {
	moves := []struct {
		name           string
		r1, c1, r2, c2 int
	}{
		{"bomb first", 0, 0, 0, 1},
		{"partner first", 0, 1, 0, 0},
	}

	for _, m := range moves {
		t.Run(m.name, func(t *testing.T) {
			e := newEngine(t, bombConfig(engine.TriggerSwapAdjacent), bombBoard(), 3)

			res, err := e.ApplyMove(m.r1, m.c1, m.r2, m.c2)
			require.NoError(t, err)

			assert.True(t, res.Bomb)
			assert.True(t, res.Pending)
			assert.Equal(t, 60, res.ScoreDelta)
			require.NotEmpty(t, res.Events)
			assert.Equal(t, cells(0, 0, 0, 1, 3, 3, 5, 7, 7, 2, 9, 9), res.Events[0].Cells)

			settle(t, e)
			assert.Empty(t, e.Grid().Bombs(), "detonated bomb is gone and no bomb is created")
		})
	}
}

func TestBombDirectTap(t *testing.T) {
	e := newEngine(t, bombConfig(engine.TriggerDirectTap), bombBoard(), 3)

	// Non-bomb cells do nothing
	res, err := e.SelectSingle(0, 1)
	require.NoError(t, err)
	assert.False(t, res.Accepted)

	// The bomb's own color has no other tokens: only the bomb clears
	res, err = e.SelectSingle(0, 0)
	require.NoError(t, err)
	assert.True(t, res.Bomb)
	assert.Equal(t, 10, res.ScoreDelta)
	assert.Equal(t, cells(0, 0), res.Events[0].Cells)
}

func TestBombDirectTapDropsSelection(t *testing.T) {
	e := newEngine(t, bombConfig(engine.TriggerBoth), bombBoard(), 3)

	_, _ = e.Select(4, 4)
	res, err := e.SelectSingle(0, 0)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.False(t, e.Session().HasSelection)
	assert.Equal(t, engine.StateResolving, e.Session().State)
}

func TestBombSwapIsOrdinaryInDirectTapMode(t *testing.T) {
	e := newEngine(t, bombConfig(engine.TriggerDirectTap), bombBoard(), 3)
	before := e.Grid()

	res, err := e.ApplyMove(0, 0, 0, 1)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.False(t, res.Bomb)
	assert.Empty(t, res.Events)
	assert.True(t, e.Grid().Equal(before))
}

func TestBombTapDisabledInSwapMode(t *testing.T) {
	e := newEngine(t, bombConfig(engine.TriggerSwapAdjacent), bombBoard(), 3)

	res, err := e.SelectSingle(0, 0)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, engine.StateIdle, e.Session().State)
}

func TestLayoutWithTwoBombsRejected(t *testing.T) {
	l := bomb(bombBoard(), 2, engine.At(0, 1))

	for _, mode := range []engine.Mode{engine.ModeRush, engine.ModeEndless} {
		cfg := bombConfig(engine.TriggerBoth)
		cfg.Mode = mode
		_, err := engine.New(cfg, engine.WithLayout(l), engine.WithSource(engine.NewRandSource(3)))
		require.Error(t, err, "mode %v", mode)
		assert.Contains(t, err.Error(), "at most 1")
	}
}

func TestBombClearSet(t *testing.T) {
	g := gridFrom(
		"B0112",
		"1021",
		"2100",
	)

	got := engine.BombClearSet(g, engine.At(0, 0), 2)
	assert.Equal(t, cells(0, 0, 0, 3, 1, 2, 2, 0), got)

	// A color with no tokens clears only the bomb
	got = engine.BombClearSet(g, engine.At(0, 0), 7)
	assert.Equal(t, cells(0, 0), got)
}
