package engine

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every internal consistency failure.
var ErrInvariant = errors.New("engine: invariant violated")

// Invariant codes.
const (
	CodeColorRange  = "COLOR_RANGE"  // token source returned a value outside the palette
	CodePassGuard   = "PASS_GUARD"   // cascade exceeded the pass limit
	CodeGridHole    = "GRID_HOLE"    // empty cell left after refill
	CodeSourceRange = "SOURCE_RANGE" // token source returned an out-of-range cell index
)

// InvariantError reports a broken engine invariant. The session that
// produced it has moved to Ended.
type InvariantError struct {
	Code    string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

func invariantf(code, format string, args ...any) *InvariantError {
	return &InvariantError{Code: code, Message: fmt.Sprintf(format, args...)}
}
