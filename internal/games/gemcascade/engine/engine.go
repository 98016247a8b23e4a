package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Engine owns one game session: the grid, the session state machine and any
// cascade in flight. It is not safe for concurrent use; callers serialize
// every call, typically from a single UI or simulation loop.
type Engine struct {
	cfg    Config
	src    IntNSource
	logger *log.Logger
	layout Layout

	grid    *Grid
	session Session
	cascade cascade
	nextID  uint64

	// Session clock. now is the latest tick seen; countedAt is the point up
	// to which the Rush countdown has been charged.
	now       time.Duration
	countedAt time.Duration

	pausePending bool
	expired      bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the token source used for board generation and refills.
func WithSource(src IntNSource) Option {
	return func(e *Engine) {
		e.src = src
	}
}

// WithLogger sets the logger. The default logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithLayout starts every session from a fixed board instead of a generated one.
func WithLayout(l Layout) Option {
	return func(e *Engine) {
		e.layout = l
	}
}

// New validates cfg, builds an engine and starts a session in cfg.Mode.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: invalid config: %w", err)
	}

	e := &Engine{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = NewRandSource(time.Now().UnixNano())
	}
	if e.layout != nil {
		if err := e.layout.check(cfg); err != nil {
			return nil, fmt.Errorf("engine: invalid layout: %w", err)
		}
	}

	if err := e.Start(cfg.Mode); err != nil {
		return nil, err
	}
	return e, nil
}

// Config returns the engine configuration. Mode reflects the current session.
func (e *Engine) Config() Config {
	return e.cfg
}

// Session returns a copy of the session record.
func (e *Engine) Session() Session {
	return e.session
}

// Grid returns a deep copy of the board.
func (e *Engine) Grid() *Grid {
	return e.grid.Clone()
}

// Now returns the latest session-relative time seen by Tick.
func (e *Engine) Now() time.Duration {
	return e.now
}

func (e *Engine) newToken(c Color, special Special) Token {
	e.nextID++
	return Token{ID: e.nextID, Color: c, Special: special}
}

// drawColor draws one color index from the source.
func (e *Engine) drawColor() (Color, error) {
	n := e.src.IntN(e.cfg.PaletteSize)
	if n < 0 || n >= e.cfg.PaletteSize {
		return 0, e.fail(invariantf(CodeColorRange, "source returned %d for palette of %d", n, e.cfg.PaletteSize))
	}
	return Color(n), nil
}

// drawColorExcept draws uniformly among palette colors not in banned,
// using exactly one source call.
func (e *Engine) drawColorExcept(banned []Color) (Color, error) {
	allowed := make([]Color, 0, e.cfg.PaletteSize)
	for c := 0; c < e.cfg.PaletteSize; c++ {
		if !containsColor(banned, Color(c)) {
			allowed = append(allowed, Color(c))
		}
	}
	n := e.src.IntN(len(allowed))
	if n < 0 || n >= len(allowed) {
		return 0, e.fail(invariantf(CodeColorRange, "source returned %d for %d allowed colors", n, len(allowed)))
	}
	return allowed[n], nil
}

func containsColor(colors []Color, c Color) bool {
	for _, x := range colors {
		if x == c {
			return true
		}
	}
	return false
}

// fail ends the session after an invariant violation.
func (e *Engine) fail(err *InvariantError) error {
	e.logger.Error("invariant violated", "code", err.Code, "msg", err.Message, "pass", e.cascade.pass)
	e.cascade = cascade{}
	e.pausePending = false
	e.session.State = StateEnded
	e.session.clearSelection()
	return err
}

// reject logs an ignored input.
func (e *Engine) reject(op, reason string, kv ...any) {
	args := append([]any{"op", op, "reason", reason, "state", e.session.State}, kv...)
	e.logger.Debug("input rejected", args...)
}
