package layouts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gemcascade/internal/games/gemcascade/engine"
)

const demo = `
id: demo
name: Demo board
rows:
  - "b5 2 0"
  - "1  0 ."
  - "2  1 0"
metadata:
  author: test
`

func TestParse(t *testing.T) {
	l, err := Parse([]byte(demo))
	require.NoError(t, err)

	assert.Equal(t, "demo", l.ID)
	assert.Equal(t, "Demo board", l.Name)
	assert.Equal(t, 3, l.Rows)
	assert.Equal(t, 3, l.Cols)
	assert.Equal(t, 6, l.Palette, "highest color 5 needs six colors")
	assert.Equal(t, "test", l.Metadata["author"])

	assert.Equal(t, engine.LayoutCell{Color: 5, Bomb: true}, l.Cells[0][0])
	assert.Equal(t, engine.LayoutCell{Color: 2}, l.Cells[0][1])
	assert.True(t, l.Cells[1][2].Empty)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no rows", "id: x\n"},
		{"ragged rows", "rows: [\"0 1 2\", \"0 1\", \"1 2 0\"]\n"},
		{"bad cell", "rows: [\"0 1 x\", \"0 1 2\", \"1 2 0\"]\n"},
		{"color too large", "rows: [\"0 1 10\", \"0 1 2\", \"1 2 0\"]\n"},
		{"too small", "rows: [\"0 1\", \"1 0\"]\n"},
		{"palette too narrow", "palette: 3\nrows: [\"0 1 4\", \"0 1 2\", \"1 2 0\"]\n"},
		{"two bombs", "rows: [\"b0 1 2\", \"1 2 0\", \"2 0 b1\"]\n"},
		{"not yaml", "rows: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		in      string
		want    engine.LayoutCell
		wantErr bool
	}{
		{"0", engine.LayoutCell{Color: 0}, false},
		{"9", engine.LayoutCell{Color: 9}, false},
		{"b3", engine.LayoutCell{Color: 3, Bomb: true}, false},
		{"B3", engine.LayoutCell{Color: 3, Bomb: true}, false},
		{".", engine.LayoutCell{Empty: true}, false},
		{"b", engine.LayoutCell{}, true},
		{"-1", engine.LayoutCell{}, true},
		{"x", engine.LayoutCell{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCell(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			if tc.in != "B3" {
				assert.Equal(t, tc.in, got.String())
			}
		})
	}
}

func TestConfigure(t *testing.T) {
	l, err := Parse([]byte(demo))
	require.NoError(t, err)

	cfg := engine.DefaultConfig()
	cfg.PaletteSize = 4
	got := l.Configure(cfg)
	assert.Equal(t, 3, got.Rows)
	assert.Equal(t, 3, got.Cols)
	assert.Equal(t, 6, got.PaletteSize)

	// The configured engine accepts the layout
	e, err := engine.New(got, engine.WithLayout(l.Cells), engine.WithSource(engine.NewRandSource(1)))
	require.NoError(t, err)
	assert.Zero(t, e.Grid().EmptyCount())
	assert.Len(t, e.Grid().Bombs(), 1)
}

func TestRoundTripThroughGridString(t *testing.T) {
	e, err := engine.New(engine.DefaultConfig(), engine.WithSource(engine.NewRandSource(3)))
	require.NoError(t, err)
	g := e.Grid()

	doc := "rows:\n"
	for _, r := range strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n") {
		doc += "  - \"" + r + "\"\n"
	}

	l, err := Parse([]byte(doc))
	require.NoError(t, err)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			tok, _ := g.Get(engine.At(r, c))
			assert.Equal(t, tok.Color, l.Cells[r][c].Color)
			assert.Equal(t, tok.IsBomb(), l.Cells[r][c].Bomb)
		}
	}
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
	}
	write("b.yaml", "id: beta\nrows: [\"0 1 2\", \"1 2 0\", \"2 0 1\"]\n")
	write("a.yml", "rows: [\"0 1 2\", \"1 2 0\", \"2 0 1\"]\n")
	write("broken.yaml", "rows: [\"0 1\"]\n")
	write("notes.txt", "not a layout")

	loader := NewLoader(dir)
	all, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID, "missing id falls back to the file name")
	assert.Equal(t, "beta", all[1].ID)
	assert.Equal(t, filepath.Join(dir, "b.yaml"), all[1].FilePath)

	l, err := loader.LoadByID("beta")
	require.NoError(t, err)
	assert.Equal(t, 3, l.Rows)

	_, err = loader.LoadByID("gamma")
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestBundledLayouts(t *testing.T) {
	all, err := NewLoader(filepath.Join("..", "..", "..", "..", "configs", "layouts")).LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "corners", all[0].ID)
	assert.Equal(t, "cross", all[1].ID)

	for _, l := range all {
		t.Run(l.ID, func(t *testing.T) {
			eng, err := engine.New(l.Configure(engine.DefaultConfig()),
				engine.WithLayout(l.Cells), engine.WithSource(engine.NewRandSource(1)))
			require.NoError(t, err)
			assert.Zero(t, eng.Grid().EmptyCount())
			assert.Len(t, eng.Grid().Bombs(), 1, "the layout bomb replaces the rush bomb")
		})
	}
}
