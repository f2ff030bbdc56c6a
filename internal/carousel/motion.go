package carousel

// Motion is the single active source of track movement.
type Motion int

const (
	// Idle means nothing is moving the track.
	Idle Motion = iota
	// Dragging means the pointer is held and the track follows it.
	Dragging
	// ProgrammaticScrolling means the engine itself is moving the track.
	// Input that would otherwise scroll is ignored while it is set.
	ProgrammaticScrolling
	// Settling means the wheel moved the track and a snap is pending.
	Settling
)

func (s Motion) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case ProgrammaticScrolling:
		return "programmatic"
	case Settling:
		return "settling"
	}
	return "unknown"
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
