package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skatters/constants"
	"github.com/lixenwraith/skatters/game"
	"github.com/lixenwraith/skatters/physics"
)

// TerminalRenderer draws a match on a tcell screen, scaling the playfield to
// whatever size the terminal currently has
type TerminalRenderer struct {
	screen      tcell.Screen
	fieldWidth  float64
	fieldHeight float64

	// Cell grid for the current frame
	cols, rows int
}

// NewTerminalRenderer creates a renderer for a playfield of the given size
func NewTerminalRenderer(screen tcell.Screen, fieldWidth, fieldHeight int) *TerminalRenderer {
	return &TerminalRenderer{
		screen:      screen,
		fieldWidth:  float64(fieldWidth),
		fieldHeight: float64(fieldHeight),
	}
}

// RenderFrame renders the entire match frame
func (r *TerminalRenderer) RenderFrame(m *game.Match) {
	r.begin()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbForeground)

	r.drawCenterLine(defaultStyle)

	paddleStyle := defaultStyle.Foreground(RgbForeground)
	r.fillRect(m.LeftPaddle(), constants.GlyphPaddle, paddleStyle)
	r.fillRect(m.RightPaddle(), constants.GlyphPaddle, paddleStyle)

	vx, _ := m.BallVelocity()
	r.fillRect(m.Ball(), constants.GlyphBall, defaultStyle.Foreground(GetSpeedColor(vx)))

	rect, active := m.PowerUp()
	r.drawPowerUp(rect, active, defaultStyle)

	r.drawScores(m.LeftScore(), m.RightScore(), defaultStyle)

	if label := m.WinnerLabel(); label != "" {
		r.drawCenteredText(r.fieldHeight/2, label, defaultStyle.Foreground(RgbWinner).Bold(true))
	}

	r.screen.Show()
}

// RenderMessage clears the screen and shows text centred, used for the welcome screen
func (r *TerminalRenderer) RenderMessage(text string) {
	r.begin()
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbForeground)
	r.drawCenteredText(r.fieldHeight/2, text, style)
	r.screen.Show()
}

// begin picks up the current terminal size and clears to the background
func (r *TerminalRenderer) begin() {
	r.cols, r.rows = r.screen.Size()
	r.screen.SetStyle(tcell.StyleDefault.Background(RgbBackground))
	r.screen.Clear()
}

// col maps a playfield x coordinate to a terminal column
func (r *TerminalRenderer) col(x float64) int {
	return int(math.Floor(x * float64(r.cols) / r.fieldWidth))
}

// row maps a playfield y coordinate to a terminal row
func (r *TerminalRenderer) row(y float64) int {
	return int(math.Floor(y * float64(r.rows) / r.fieldHeight))
}

// cellSpan returns the inclusive cell range covered by a rectangle, at least one cell wide
func (r *TerminalRenderer) cellSpan(rect physics.Rect) (c0, r0, c1, r1 int) {
	c0 = r.col(rect.Left())
	r0 = r.row(rect.Top())
	c1 = int(math.Ceil(rect.Right()*float64(r.cols)/r.fieldWidth)) - 1
	r1 = int(math.Ceil(rect.Bottom()*float64(r.rows)/r.fieldHeight)) - 1
	if c1 < c0 {
		c1 = c0
	}
	if r1 < r0 {
		r1 = r0
	}
	return c0, r0, c1, r1
}

func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.cols || y >= r.rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// fillRect paints every cell a rectangle touches
func (r *TerminalRenderer) fillRect(rect physics.Rect, ch rune, style tcell.Style) {
	c0, r0, c1, r1 := r.cellSpan(rect)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			r.setCell(x, y, ch, style)
		}
	}
}

func (r *TerminalRenderer) drawCenterLine(defaultStyle tcell.Style) {
	x := r.col(r.fieldWidth / 2)
	style := defaultStyle.Foreground(RgbCenterLine)
	for y := 0; y < r.rows; y++ {
		r.setCell(x, y, constants.GlyphCenterLine, style)
	}
}

// drawPowerUp is a no-op while the power-up is inactive
func (r *TerminalRenderer) drawPowerUp(rect physics.Rect, active bool, defaultStyle tcell.Style) {
	if !active {
		return
	}
	r.fillRect(rect, constants.GlyphPowerUp, defaultStyle.Foreground(RgbPowerUp))
}

func (r *TerminalRenderer) drawScores(left, right int, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbScore).Bold(true)
	y := r.row(constants.ScoreY)
	r.drawText(r.col(r.fieldWidth/4), y, fmt.Sprintf("%d", left), style)
	r.drawText(r.col(r.fieldWidth*3/4), y, fmt.Sprintf("%d", right), style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.setCell(x+i, y, ch, style)
	}
}

// drawCenteredText centres text horizontally on the row holding playfield y
func (r *TerminalRenderer) drawCenteredText(fieldY float64, text string, style tcell.Style) {
	runes := []rune(text)
	x := (r.cols - len(runes)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, r.row(fieldY), text, style)
}
