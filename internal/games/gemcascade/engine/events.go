package engine

// EventKind identifies a cascade event.
type EventKind uint8

const (
	EventDestroy EventKind = iota
	EventFall
	EventSpawn
	EventShuffle
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventDestroy:
		return "destroy"
	case EventFall:
		return "fall"
	case EventSpawn:
		return "spawn"
	case EventShuffle:
		return "shuffle"
	default:
		return "unknown"
	}
}

// CascadeEvent is a declarative description of one board change.
// Presentation layers animate events in order; the engine never renders.
//
// Field use per kind:
//   - Destroy: Cells lists the cleared cells in row-major order
//   - Fall:    Cell is the destination, FromRow/ToRow the vertical move, Token the piece
//   - Spawn:   Cell and Token of the new piece
//   - Shuffle: Cell and Token after a deadlock re-color
type CascadeEvent struct {
	Kind    EventKind
	Cells   []Cell
	Cell    Cell
	FromRow int
	ToRow   int
	Token   Token
}

// DestroyEvent builds a Destroy event. The slice is copied.
func DestroyEvent(cells []Cell) CascadeEvent {
	cp := make([]Cell, len(cells))
	copy(cp, cells)
	return CascadeEvent{Kind: EventDestroy, Cells: cp}
}

// FallEvent builds a Fall event within column col.
func FallEvent(col, fromRow, toRow int, t Token) CascadeEvent {
	return CascadeEvent{Kind: EventFall, Cell: At(toRow, col), FromRow: fromRow, ToRow: toRow, Token: t}
}

// SpawnEvent builds a Spawn event.
func SpawnEvent(c Cell, t Token) CascadeEvent {
	return CascadeEvent{Kind: EventSpawn, Cell: c, Token: t}
}

// ShuffleEvent builds a Shuffle event.
func ShuffleEvent(c Cell, t Token) CascadeEvent {
	return CascadeEvent{Kind: EventShuffle, Cell: c, Token: t}
}
