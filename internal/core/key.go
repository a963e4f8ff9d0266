package core

// Key is a single discrete key event delivered to the game for one tick.
// Hosts map their native key events onto this closed set; at most one Key
// reaches the game per tick.
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyReturn
	KeyEscape
	KeyP
	KeyM
	KeyQ
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeySpace:
		return "Space"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyReturn:
		return "Return"
	case KeyEscape:
		return "Escape"
	case KeyP:
		return "P"
	case KeyM:
		return "M"
	case KeyQ:
		return "Q"
	default:
		return "Unknown"
	}
}

// KeyLatch keeps the most recent key seen between two ticks.
// Hosts that receive several key events per frame feed them all to the latch
// and hand Take() to the game, preserving the one-key-per-tick contract.
type KeyLatch struct {
	key Key
}

// Push records k, replacing any key already held.
func (l *KeyLatch) Push(k Key) {
	if k != KeyNone {
		l.key = k
	}
}

// Take returns the held key and clears the latch.
func (l *KeyLatch) Take() Key {
	k := l.key
	l.key = KeyNone
	return k
}
