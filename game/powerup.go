package game

import (
	"github.com/lixenwraith/skatters/constants"
	"github.com/lixenwraith/skatters/physics"
)

// PowerUp is a fixed collectible. Its position is drawn once and never changes.
type PowerUp struct {
	rect   physics.Rect
	active bool
}

// NewPowerUp places an inactive power-up at a random integer position within the
// inset band [inset, size-inset] on both axes
func NewPowerUp(fieldWidth, fieldHeight int, rng Rand) *PowerUp {
	inset := constants.PowerUpInset
	x := inset + rng.Intn(fieldWidth-2*inset+1)
	y := inset + rng.Intn(fieldHeight-2*inset+1)

	return &PowerUp{
		rect: physics.NewRect(float64(x), float64(y), constants.PowerUpSize, constants.PowerUpSize),
	}
}

func (p *PowerUp) Activate()          { p.active = true }
func (p *PowerUp) Collect()           { p.active = false }
func (p *PowerUp) Active() bool       { return p.active }
func (p *PowerUp) Rect() physics.Rect { return p.rect }
