package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	KindHeartbeat
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindHeartbeat:
		return "heartbeat"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of an event.
// Lower values are coarser.
type Scope uint8

const (
	// ScopeDriver wraps a whole CLI command.
	ScopeDriver Scope = iota + 1
	// ScopePass wraps a phase such as walk, render or snapshot.
	ScopePass
	// ScopeDir wraps the listing of one directory.
	ScopeDir
	// ScopeEntry marks a single tree node.
	ScopeEntry
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeDir:
		return "dir"
	case ScopeEntry:
		return "entry"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for top-level spans
	Name     string // e.g. "walk", "dir:/var/log"
	Detail   string
	Extra    map[string]string
}
