package game

import (
	"github.com/lixenwraith/skatters/config"
	"github.com/lixenwraith/skatters/constants"
	"github.com/lixenwraith/skatters/physics"
)

// Match owns both paddles, the ball, the power-up and the scores, and advances
// them one frame per Step. It is not safe for concurrent use; the game loop is
// its only writer.
type Match struct {
	cfg config.Config
	rng Rand

	left    *Paddle
	right   *Paddle
	ball    *Ball
	powerUp *PowerUp

	leftScore  int
	rightScore int
	phase      Phase
	winner     Side

	frame  int64
	events Event

	// ballInPowerUp tracks overlap across frames so one pass through the
	// power-up collects it at most once
	ballInPowerUp bool
}

// NewMatch validates cfg and sets up kickoff: paddles centred, ball centred with a
// random diagonal, power-up placed and activated
func NewMatch(cfg config.Config, rng Rand) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := float64(cfg.ScreenWidth)
	h := float64(cfg.ScreenHeight)

	m := &Match{
		cfg:   cfg,
		rng:   rng,
		left:  NewPaddle(constants.PaddleMargin, h),
		right: NewPaddle(w-constants.PaddleMargin-constants.PaddleWidth, h),
		ball:  NewBall(w, h, rng),
		phase: PhasePlaying,
	}
	m.powerUp = NewPowerUp(cfg.ScreenWidth, cfg.ScreenHeight, rng)
	m.powerUp.Activate()

	return m, nil
}

// Step advances the match by one frame. It does nothing once the match is finished.
func (m *Match) Step(left, right Input) {
	if m.phase == PhaseFinished {
		m.events = 0
		return
	}

	m.frame++
	m.events = 0

	// Paddles
	m.left.Move(left.Direction())
	m.right.Move(right.Direction())

	// Ball and walls
	if m.ball.Move() {
		m.events |= EventWallBounce
	}

	// Each paddle is tested on its own; overlapping both cancels out
	if m.ball.Rect.Intersects(m.left.Rect) {
		m.ball.BounceHorizontal()
		m.events |= EventPaddleHit
	}
	if m.ball.Rect.Intersects(m.right.Rect) {
		m.ball.BounceHorizontal()
		m.events |= EventPaddleHit
	}

	// Scoring edges are independent checks against the current ball position
	if m.ball.Rect.Left() <= 0 {
		m.rightScore++
		m.ball.Reset(m.rng)
		m.events |= EventScoreRight
	}
	if m.ball.Rect.Right() >= float64(m.cfg.ScreenWidth) {
		m.leftScore++
		m.ball.Reset(m.rng)
		m.events |= EventScoreLeft
	}

	// Power-up collection and respawn
	collected := false
	inside := m.ball.Rect.Intersects(m.powerUp.Rect())
	if m.powerUp.Active() && inside && !m.ballInPowerUp {
		m.ball.Boost(constants.PowerUpBoost)
		m.powerUp.Collect()
		m.events |= EventPowerUp
		collected = true
	}
	m.ballInPowerUp = inside

	if !m.powerUp.Active() && !collected {
		m.powerUp.Activate()
	}

	// Win check
	if m.leftScore >= m.cfg.WinScore {
		m.finish(SideLeft)
	}
	if m.rightScore >= m.cfg.WinScore {
		m.finish(SideRight)
	}
}

func (m *Match) finish(winner Side) {
	m.phase = PhaseFinished
	m.winner = winner
	m.events |= EventMatchOver
}

// ===== ACCESSORS =====

func (m *Match) LeftPaddle() physics.Rect  { return m.left.Rect }
func (m *Match) RightPaddle() physics.Rect { return m.right.Rect }
func (m *Match) Ball() physics.Rect        { return m.ball.Rect }

// BallVelocity returns the ball's current (vx, vy)
func (m *Match) BallVelocity() (float64, float64) {
	return m.ball.VX, m.ball.VY
}

// PowerUp returns the power-up rectangle and whether it is active
func (m *Match) PowerUp() (physics.Rect, bool) {
	return m.powerUp.Rect(), m.powerUp.Active()
}

func (m *Match) LeftScore() int  { return m.leftScore }
func (m *Match) RightScore() int { return m.rightScore }
func (m *Match) Phase() Phase    { return m.phase }
func (m *Match) Finished() bool  { return m.phase == PhaseFinished }

// Winner returns the winning side once the match is finished
func (m *Match) Winner() (Side, bool) {
	if m.phase != PhaseFinished {
		return SideNone, false
	}
	return m.winner, true
}

// WinnerLabel is the result message, empty while playing
func (m *Match) WinnerLabel() string {
	return m.winner.WinLabel()
}

// Events reports what happened during the last Step
func (m *Match) Events() Event { return m.events }

// Frame is the number of steps applied so far
func (m *Match) Frame() int64 { return m.frame }

// Config returns the settings the match was built with
func (m *Match) Config() config.Config { return m.cfg }
