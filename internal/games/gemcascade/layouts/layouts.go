// Package layouts loads fixed starting boards from YAML fixture files.
// This package depends on engine but engine does not depend on layouts.
package layouts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gemcascade/internal/games/gemcascade/engine"
)

// YAMLLayout is the on-disk structure of a layout file.
//
//	id: bomb-demo
//	name: Bomb demo
//	palette: 6
//	rows:
//	  - "b5 2 0 1"
//	  - "1 0 . 2"
//
// Each cell is a color index, a color index prefixed with 'b' for a color
// bomb, or '.' for a cell filled from the token source at start.
type YAMLLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Palette  int               `yaml:"palette,omitempty"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Layout is a parsed fixture ready for use.
type Layout struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Palette  int // smallest palette that covers every color used
	Cells    engine.Layout
	Metadata map[string]string
	FilePath string
}

// Configure returns cfg resized to the layout, with the palette widened if
// the layout uses colors beyond it.
func (l Layout) Configure(cfg engine.Config) engine.Config {
	cfg.Rows = l.Rows
	cfg.Cols = l.Cols
	if l.Palette > cfg.PaletteSize {
		cfg.PaletteSize = l.Palette
	}
	return cfg
}

// Parse parses a YAML layout.
func Parse(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yl.Rows) == 0 {
		return Layout{}, fmt.Errorf("layout %q has no rows", yl.ID)
	}

	l := Layout{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     len(yl.Rows),
		Cells:    make(engine.Layout, len(yl.Rows)),
		Metadata: yl.Metadata,
	}

	maxColor := -1
	bombs := 0
	for r, line := range yl.Rows {
		fields := strings.Fields(line)
		if r == 0 {
			l.Cols = len(fields)
		}
		if len(fields) != l.Cols {
			return Layout{}, fmt.Errorf("row %d has %d cells, want %d", r, len(fields), l.Cols)
		}
		row := make([]engine.LayoutCell, len(fields))
		for c, f := range fields {
			cell, err := ParseCell(f)
			if err != nil {
				return Layout{}, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			if !cell.Empty && int(cell.Color) > maxColor {
				maxColor = int(cell.Color)
			}
			if cell.Bomb {
				bombs++
			}
			row[c] = cell
		}
		l.Cells[r] = row
	}

	if bombs > 1 {
		return Layout{}, fmt.Errorf("layout %q marks %d bombs, at most 1 allowed", yl.ID, bombs)
	}
	if l.Rows < engine.MinRun || l.Cols < engine.MinRun {
		return Layout{}, fmt.Errorf("layout %dx%d smaller than %dx%d", l.Rows, l.Cols, engine.MinRun, engine.MinRun)
	}

	l.Palette = maxColor + 1
	if yl.Palette > 0 {
		if yl.Palette < l.Palette {
			return Layout{}, fmt.Errorf("palette %d does not cover color %d", yl.Palette, maxColor)
		}
		l.Palette = yl.Palette
	}
	if l.Palette < engine.MinPalette {
		l.Palette = engine.MinPalette
	}
	if l.Palette > engine.MaxPalette {
		return Layout{}, fmt.Errorf("palette %d exceeds %d", l.Palette, engine.MaxPalette)
	}
	return l, nil
}

// ParseCell parses one cell of fixture notation.
func ParseCell(s string) (engine.LayoutCell, error) {
	if s == "." {
		return engine.LayoutCell{Empty: true}, nil
	}
	var cell engine.LayoutCell
	if strings.HasPrefix(s, "b") || strings.HasPrefix(s, "B") {
		cell.Bomb = true
		s = s[1:]
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= engine.MaxPalette {
		return engine.LayoutCell{}, fmt.Errorf("invalid cell %q", s)
	}
	cell.Color = engine.Color(n)
	return cell, nil
}

// Loader handles loading layouts from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new layout loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all layout files.
// Invalid files are skipped. Returns layouts sorted by ID.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(path) {
			return nil
		}

		layout, err := LoadFile(path)
		if err != nil {
			return nil
		}
		layouts = append(layouts, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})
	return layouts, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}
	for _, layout := range layouts {
		if layout.ID == id {
			return layout, nil
		}
	}
	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

// LoadFile loads a single layout file. A missing ID defaults to the file name.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	layout, err := Parse(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if layout.ID == "" {
		layout.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	layout.FilePath = path
	return layout, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
