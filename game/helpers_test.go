package game

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/skatters/config"
	"github.com/lixenwraith/skatters/physics"
)

// seqRand replays scripted values, wrapping around
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func newTestMatch(t *testing.T, mutate func(*config.Config)) *Match {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := NewMatch(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}
	return m
}

// parkPowerUp moves the power-up to a spot the test ball never crosses
func parkPowerUp(m *Match) {
	m.powerUp.rect = physics.NewRect(600, 480, 20, 20)
	m.ballInPowerUp = false
}

// placeBall puts the ball's top-left corner at (x, y) with velocity (vx, vy)
func placeBall(m *Match, x, y, vx, vy float64) {
	m.ball.Rect.X = x
	m.ball.Rect.Y = y
	m.ball.VX = vx
	m.ball.VY = vy
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
