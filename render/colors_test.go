package render

import (
	"testing"

	"github.com/lixenwraith/skatters/constants"
)

func TestGetSpeedColor(t *testing.T) {
	tests := []struct {
		name      string
		speed     float64
		wantWhite bool
	}{
		{"Base speed", constants.BallSpeed, true},
		{"Base speed leftwards", -constants.BallSpeed, true},
		{"One boost", 7.5, false},
		{"Two boosts", 11.25, false},
		{"Three boosts", 16.875, false},
		{"Far beyond gradient", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := GetSpeedColor(tt.speed)
			if (color == RgbForeground) != tt.wantWhite {
				t.Errorf("Speed %v: expected white=%v, got %v", tt.speed, tt.wantWhite, color)
			}
		})
	}
}

// TestGetSpeedColorWarms verifies green fades as the ball speeds up
func TestGetSpeedColorWarms(t *testing.T) {
	var prevG int32 = 256
	for _, speed := range []float64{7.5, 11.25, 16.875} {
		_, g, _ := GetSpeedColor(speed).RGB()
		if g > prevG {
			t.Errorf("Speed %v: expected green channel to fall, got %d after %d", speed, g, prevG)
		}
		prevG = g
	}
}
