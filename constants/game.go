package constants

// Playfield
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Paddles
const (
	PaddleWidth  = 10
	PaddleHeight = 100
	PaddleSpeed  = 10

	// PaddleMargin is the gap between the left wall and the left paddle.
	// The right paddle sits at ScreenWidth - PaddleMargin - PaddleWidth.
	PaddleMargin = 10
)

// Ball
const (
	BallSize = 15

	// BallSpeed is the magnitude of each velocity component after a reset
	BallSpeed = 5
)

// Power-up
const (
	PowerUpSize = 20

	// PowerUpInset keeps the spawn point away from the screen edges
	PowerUpInset = 100

	// PowerUpBoost multiplies the ball's horizontal velocity on collection
	PowerUpBoost = 1.5
)

// Match
const (
	// WinScore is the number of points that ends the match
	WinScore = 10
)
