package constants

import (
	"testing"
	"time"
)

// TestFrameInterval verifies the frame interval matches the frame rate
func TestFrameInterval(t *testing.T) {
	frames := time.Second / FrameUpdateInterval
	if frames != FrameRate {
		t.Errorf("Expected %d frames per second, got %d", FrameRate, frames)
	}
}

// TestKeyHoldOutlastsRepeatDelay verifies a held terminal key keeps moving the
// paddle until the terminal starts auto-repeating (delays reach about 500ms)
func TestKeyHoldOutlastsRepeatDelay(t *testing.T) {
	if KeyHoldDuration <= 500*time.Millisecond {
		t.Errorf("Expected key hold above 500ms, got %v", KeyHoldDuration)
	}
}

// TestGeometryFits verifies the fixed entities fit inside the playfield
func TestGeometryFits(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"Paddle fits vertically", PaddleHeight < ScreenHeight},
		{"Paddles do not overlap", 2*(PaddleMargin+PaddleWidth) < ScreenWidth},
		{"Power-up range is non-empty horizontally", ScreenWidth-2*PowerUpInset >= 0},
		{"Power-up range is non-empty vertically", ScreenHeight-2*PowerUpInset >= 0},
		{"Ball fits between walls", BallSize < ScreenHeight},
		{"Scores sit inside the field", ScoreY < ScreenHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.ok {
				t.Errorf("Expected %s", tt.name)
			}
		})
	}
}
