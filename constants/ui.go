package constants

// Window and messages
const (
	Title          = "Skatters"
	WelcomeMessage = "Welcome To Skatters - Play with no worries"

	LeftWinsLabel  = "Left Player Wins!"
	RightWinsLabel = "Right Player Wins!"
)

// ScoreY is the top of the score digits in playfield units.
// Scores sit at a quarter and three quarters of the field width.
const ScoreY = 10

// Terminal glyphs
const (
	GlyphPaddle     = '█'
	GlyphBall       = '●'
	GlyphPowerUp    = '◆'
	GlyphCenterLine = '┊'
)
