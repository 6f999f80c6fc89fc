package monitor

// Key is the result of one input poll.
type Key int

const (
	// KeyNone means no key arrived within the tick.
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyQuit
	// KeyOther is any key the dashboard does not bind.
	KeyOther
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyQuit:
		return "quit"
	default:
		return "other"
	}
}

// IsNavigation reports whether k forces an immediate render.
func (k Key) IsNavigation() bool {
	switch k {
	case KeyLeft, KeyRight, KeyUp, KeyDown:
		return true
	}
	return false
}
