// Package scroll compacts the header once the results have been scrolled
// far enough, with a dead zone between the two thresholds so the layout
// does not flicker near a boundary.
package scroll

// State is the header layout mode
type State int

const (
	Expanded State = iota
	Compact
)

func (s State) String() string {
	if s == Compact {
		return "compact"
	}
	return "expanded"
}

// Thresholds are scroll offsets in pixels
type Thresholds struct {
	CompactAbove int // expanded → compact when scrolling down past this
	ExpandBelow  int // compact → expanded when scrolling up under this
}

// DefaultThresholds leaves a 50..150 dead zone
var DefaultThresholds = Thresholds{CompactAbove: 150, ExpandBelow: 50}

// Machine is the two-state hysteresis machine. It is not safe for
// concurrent use; Watcher serialises access.
type Machine struct {
	th    Thresholds
	state State
	last  int
}

// NewMachine starts expanded at offset zero
func NewMachine(th Thresholds) *Machine {
	if th.CompactAbove <= th.ExpandBelow {
		th = DefaultThresholds
	}
	return &Machine{th: th}
}

// State returns the current state
func (m *Machine) State() State {
	return m.state
}

// Evaluate feeds the current offset and reports the resulting state and
// whether it changed. Direction is measured against the previous evaluation.
func (m *Machine) Evaluate(offset int) (State, bool) {
	prev := m.last
	m.last = offset

	switch {
	case m.state == Expanded && offset > prev && offset > m.th.CompactAbove:
		m.state = Compact
		return m.state, true
	case m.state == Compact && offset < prev && offset < m.th.ExpandBelow:
		m.state = Expanded
		return m.state, true
	default:
		return m.state, false
	}
}
