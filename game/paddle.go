package game

import (
	"github.com/lixenwraith/skatters/constants"
	"github.com/lixenwraith/skatters/physics"
)

// Paddle is a vertical bat that stays inside the playfield
type Paddle struct {
	Rect  physics.Rect
	Speed float64

	fieldHeight float64
}

// NewPaddle places a paddle at column x, vertically centred in a field of the given height
func NewPaddle(x, fieldHeight float64) *Paddle {
	return &Paddle{
		Rect: physics.NewRect(
			x,
			fieldHeight/2-constants.PaddleHeight/2,
			constants.PaddleWidth,
			constants.PaddleHeight,
		),
		Speed:       constants.PaddleSpeed,
		fieldHeight: fieldHeight,
	}
}

// Move shifts the paddle by one step of Speed and clamps it to the field
func (p *Paddle) Move(dir Direction) {
	switch dir {
	case DirUp:
		p.Rect.Y -= p.Speed
	case DirDown:
		p.Rect.Y += p.Speed
	default:
		return
	}
	p.Rect = p.Rect.ClampVertical(p.fieldHeight)
}
