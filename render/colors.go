package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skatters/constants"
)

// RGB color definitions for the playfield
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbForeground = tcell.NewRGBColor(255, 255, 255) // White
	RgbPowerUp    = tcell.NewRGBColor(0, 255, 0)     // Green
	RgbCenterLine = tcell.NewRGBColor(120, 120, 120) // Dim gray
	RgbScore      = tcell.NewRGBColor(255, 255, 255) // White
	RgbWinner     = tcell.NewRGBColor(255, 215, 0)   // Gold
)

// GetSpeedColor returns the ball color for a horizontal speed.
// Base speed is white; each power-up boost moves along a warm gradient.
func GetSpeedColor(speed float64) tcell.Color {
	if speed < 0 {
		speed = -speed
	}
	if speed <= constants.BallSpeed {
		return RgbForeground
	}

	// Three boosts saturate the gradient
	maxSpeed := constants.BallSpeed * constants.PowerUpBoost * constants.PowerUpBoost * constants.PowerUpBoost
	progress := (speed - constants.BallSpeed) / (maxSpeed - constants.BallSpeed)
	if progress > 1.0 {
		progress = 1.0
	}

	// White -> Yellow -> Orange -> Red
	if progress < 0.333 {
		t := progress / 0.333
		return tcell.NewRGBColor(255, 255, int32(255-(255-0)*t))
	} else if progress < 0.667 {
		t := (progress - 0.333) / 0.334
		return tcell.NewRGBColor(255, int32(255-(255-165)*t), 0)
	}
	t := (progress - 0.667) / 0.333
	return tcell.NewRGBColor(255, int32(165-(165-40)*t), 0)
}
