package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gemcascade/internal/games/gemcascade/engine"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := engine.NewGrid(4, 5)

	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 5, g.Cols())
	assert.Equal(t, 20, g.Size())
	assert.Equal(t, 20, g.EmptyCount())
	_, ok := g.Get(engine.At(0, 0))
	assert.False(t, ok)
}

func TestGridSetGetClear(t *testing.T) {
	g := engine.NewGrid(3, 3)
	tok := engine.Token{ID: 7, Color: 2}

	g.Set(engine.At(1, 2), tok)
	got, ok := g.Get(engine.At(1, 2))
	require.True(t, ok)
	assert.Equal(t, tok, got)
	assert.Equal(t, 8, g.EmptyCount())

	g.Clear(engine.At(1, 2))
	assert.True(t, g.IsEmpty(engine.At(1, 2)))
}

func TestGridOutOfBounds(t *testing.T) {
	g := engine.NewGrid(3, 3)

	// Set and Clear ignore out-of-bounds cells
	g.Set(engine.At(3, 0), engine.Token{ID: 1})
	g.Set(engine.At(0, -1), engine.Token{ID: 2})
	g.Clear(engine.At(-1, -1))
	assert.Equal(t, 9, g.EmptyCount())

	_, ok := g.Get(engine.At(5, 5))
	assert.False(t, ok)
	assert.False(t, g.InBounds(engine.At(0, 3)))
	assert.False(t, g.IsEmpty(engine.At(0, 3)), "out of bounds is not an empty cell")
}

func TestGridIsAdjacent(t *testing.T) {
	g := engine.NewGrid(3, 3)

	tests := []struct {
		name     string
		a, b     engine.Cell
		expected bool
	}{
		{"right neighbour", engine.At(1, 1), engine.At(1, 2), true},
		{"below", engine.At(0, 0), engine.At(1, 0), true},
		{"diagonal", engine.At(0, 0), engine.At(1, 1), false},
		{"same cell", engine.At(1, 1), engine.At(1, 1), false},
		{"two apart", engine.At(0, 0), engine.At(0, 2), false},
		{"out of bounds", engine.At(0, 2), engine.At(0, 3), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, g.IsAdjacent(tc.a, tc.b))
		})
	}
}

func TestGridSwapCloneEqual(t *testing.T) {
	g := engine.NewGrid(2, 2)
	g.Set(engine.At(0, 0), engine.Token{ID: 1, Color: 0})
	g.Set(engine.At(0, 1), engine.Token{ID: 2, Color: 1})

	clone := g.Clone()
	require.True(t, g.Equal(clone))

	g.Swap(engine.At(0, 0), engine.At(0, 1))
	assert.False(t, g.Equal(clone), "clone must not alias the original")

	a, _ := g.Get(engine.At(0, 0))
	assert.Equal(t, uint64(2), a.ID)

	g.Swap(engine.At(0, 0), engine.At(0, 1))
	assert.True(t, g.Equal(clone), "swapping twice restores the grid exactly")

	// Swap with an empty cell moves the token
	g.Swap(engine.At(0, 0), engine.At(1, 0))
	assert.True(t, g.IsEmpty(engine.At(0, 0)))
	b, ok := g.Get(engine.At(1, 0))
	require.True(t, ok)
	assert.Equal(t, uint64(1), b.ID)
}

func TestGridString(t *testing.T) {
	g := engine.NewGrid(2, 3)
	g.Set(engine.At(0, 0), engine.Token{ID: 1, Color: 0})
	g.Set(engine.At(0, 1), engine.Token{ID: 2, Color: 4, Special: engine.SpecialColorBomb})
	g.Set(engine.At(1, 2), engine.Token{ID: 3, Color: 9})

	assert.Equal(t, "0 b4 .\n. . 9\n", g.String())
}

func TestGridBombsAndColorCounts(t *testing.T) {
	g := engine.NewGrid(2, 2)
	g.Set(engine.At(0, 0), engine.Token{ID: 1, Color: 1})
	g.Set(engine.At(1, 1), engine.Token{ID: 2, Color: 1, Special: engine.SpecialColorBomb})
	g.Set(engine.At(1, 0), engine.Token{ID: 3, Color: 2})

	assert.Equal(t, []engine.Cell{engine.At(1, 1)}, g.Bombs())
	assert.Equal(t, []int{0, 2, 1}, g.ColorCounts(3))
}
