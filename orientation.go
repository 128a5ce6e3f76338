package mire

// Orientation is one of eight discrete facing directions, plus a sentinel
// meaning "no directional input this frame".
//
// The ordinal values are a public contract: sprite-sheet index arithmetic
// multiplies an Orientation directly into a per-direction frame span, so the
// order below must match the row layout of the packed atlases.
type Orientation uint8

const (
	OrientationUp        Orientation = iota // facing away from the viewer
	OrientationUpRight                      // diagonal up-right
	OrientationRight                        // facing right
	OrientationDownRight                    // diagonal down-right
	OrientationDown                         // facing the viewer
	OrientationDownLeft                     // diagonal down-left
	OrientationLeft                         // facing left
	OrientationUpLeft                       // diagonal up-left
	OrientationStill                        // no movement this frame (not a facing)
)

// String returns the orientation name for debugging.
func (o Orientation) String() string {
	switch o {
	case OrientationUp:
		return "Up"
	case OrientationUpRight:
		return "UpRight"
	case OrientationRight:
		return "Right"
	case OrientationDownRight:
		return "DownRight"
	case OrientationDown:
		return "Down"
	case OrientationDownLeft:
		return "DownLeft"
	case OrientationLeft:
		return "Left"
	case OrientationUpLeft:
		return "UpLeft"
	case OrientationStill:
		return "Still"
	default:
		return "Unknown"
	}
}

// Stance is the coarse animation state of an actor. The two death stances are
// terminal: once entered, an actor never returns to Still or Walking.
type Stance uint8

const (
	StanceStill         Stance = iota // idle pose
	StanceWalking                     // walk cycle
	StanceNormalDeath                 // ordinary death animation (terminal)
	StanceCriticalDeath               // critical death animation (terminal)
)

// String returns the stance name for debugging.
func (s Stance) String() string {
	switch s {
	case StanceStill:
		return "Still"
	case StanceWalking:
		return "Walking"
	case StanceNormalDeath:
		return "NormalDeath"
	case StanceCriticalDeath:
		return "CriticalDeath"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the stance is one of the two death states.
func (s Stance) Terminal() bool {
	return s == StanceNormalDeath || s == StanceCriticalDeath
}
