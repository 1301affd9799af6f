package game

import (
	"github.com/lixenwraith/skatters/constants"
	"github.com/lixenwraith/skatters/physics"
)

// Ball moves diagonally, reflecting off the top and bottom walls only
type Ball struct {
	Rect   physics.Rect
	VX, VY float64

	fieldWidth  float64
	fieldHeight float64
}

// NewBall creates a ball centred in the field with a random diagonal velocity
func NewBall(fieldWidth, fieldHeight float64, rng Rand) *Ball {
	b := &Ball{
		Rect:        physics.NewRect(0, 0, constants.BallSize, constants.BallSize),
		fieldWidth:  fieldWidth,
		fieldHeight: fieldHeight,
	}
	b.Reset(rng)
	return b
}

// Move advances the ball by its velocity. Touching or crossing the top or bottom
// wall inverts VY for the next frame; the return value reports that reflection.
func (b *Ball) Move() bool {
	b.Rect.X += b.VX
	b.Rect.Y += b.VY

	if b.Rect.Top() <= 0 || b.Rect.Bottom() >= b.fieldHeight {
		b.VY = -b.VY
		return true
	}
	return false
}

// Reset recentres the ball and draws each velocity component from {-speed, +speed}
func (b *Ball) Reset(rng Rand) {
	b.Rect = b.Rect.WithCenter(b.fieldWidth/2, b.fieldHeight/2)
	b.VX = randomComponent(rng)
	b.VY = randomComponent(rng)
}

// BounceHorizontal mirrors the horizontal velocity (paddle hit)
func (b *Ball) BounceHorizontal() {
	b.VX = -b.VX
}

// Boost scales the horizontal velocity
func (b *Ball) Boost(factor float64) {
	b.VX *= factor
}

func randomComponent(rng Rand) float64 {
	if rng.Intn(2) == 0 {
		return -constants.BallSpeed
	}
	return constants.BallSpeed
}
