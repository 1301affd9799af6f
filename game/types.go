// Package game implements the paddle match: entities, collisions, scoring and the
// win condition. It has no I/O; frontends feed Input and read state back.
package game

import "github.com/lixenwraith/skatters/constants"

// Rand is the random source a Match draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Direction is a paddle move command
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "None"
	}
}

// Input is one player's controls for a frame
type Input struct {
	Up   bool
	Down bool
}

// Direction resolves the flags; Up wins when both are held
func (in Input) Direction() Direction {
	if in.Up {
		return DirUp
	}
	if in.Down {
		return DirDown
	}
	return DirNone
}

// Side identifies a player
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "None"
	}
}

// WinLabel is the message shown when s wins
func (s Side) WinLabel() string {
	switch s {
	case SideLeft:
		return constants.LeftWinsLabel
	case SideRight:
		return constants.RightWinsLabel
	default:
		return ""
	}
}

// Phase is the match state machine: Playing -> Finished
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseFinished
)

func (p Phase) String() string {
	if p == PhaseFinished {
		return "Finished"
	}
	return "Playing"
}

// Event is a bitmask of what happened during the last Step
type Event uint16

const (
	EventWallBounce Event = 1 << iota
	EventPaddleHit
	EventScoreLeft  // left player scored
	EventScoreRight // right player scored
	EventPowerUp    // power-up collected
	EventMatchOver
)

// Has reports whether all bits of e are set
func (ev Event) Has(e Event) bool {
	return ev&e == e
}
