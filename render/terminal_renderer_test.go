package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skatters/config"
	"github.com/lixenwraith/skatters/constants"
	"github.com/lixenwraith/skatters/game"
	"github.com/lixenwraith/skatters/physics"
)

// scriptRand replays fixed draws so entity placement is known
type scriptRand struct {
	vals []int
	i    int
}

func (s *scriptRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	// Init resets the simulated size, so resize afterwards
	screen.SetSize(w, h)
	if gw, gh := screen.Size(); gw != w || gh != h {
		t.Fatalf("Expected %dx%d screen, got %dx%d", w, h, gw, gh)
	}
	return screen
}

// newKickoffMatch returns a match with ball velocity (5,5) and the power-up at (100,100)
func newKickoffMatch(t *testing.T, mutate func(*config.Config)) *game.Match {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := game.NewMatch(cfg, &scriptRand{vals: []int{1, 1, 0, 0}})
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}
	return m
}

func expectRune(t *testing.T, screen tcell.SimulationScreen, x, y int, want rune) tcell.Style {
	t.Helper()
	mainc, _, style, _ := screen.GetContent(x, y)
	if mainc != want {
		t.Errorf("Cell (%d,%d): expected '%c', got '%c'", x, y, want, mainc)
	}
	return style
}

// TestRenderKickoff verifies entity placement on an 80x24 terminal (0.1 col and 0.04 row per unit)
func TestRenderKickoff(t *testing.T) {
	screen := newScreen(t, 80, 24)
	defer screen.Fini()

	m := newKickoffMatch(t, nil)
	r := NewTerminalRenderer(screen, 800, 600)
	r.RenderFrame(m)

	// Paddles: x 10..20 -> col 1, x 780..790 -> col 78, y 250..350 -> rows 10..13
	for y := 10; y <= 13; y++ {
		expectRune(t, screen, 1, y, constants.GlyphPaddle)
		expectRune(t, screen, 78, y, constants.GlyphPaddle)
	}
	expectRune(t, screen, 1, 9, ' ')
	expectRune(t, screen, 1, 14, ' ')

	// Ball centred: cols 39..40, rows 11..12
	for y := 11; y <= 12; y++ {
		for x := 39; x <= 40; x++ {
			style := expectRune(t, screen, x, y, constants.GlyphBall)
			if fg, _, _ := style.Decompose(); fg != RgbForeground {
				t.Errorf("Expected base-speed ball to be white, got %v", fg)
			}
		}
	}

	// Centre line
	expectRune(t, screen, 40, 5, constants.GlyphCenterLine)

	// Power-up at (100,100): cols 10..11, row 4
	for x := 10; x <= 11; x++ {
		style := expectRune(t, screen, x, 4, constants.GlyphPowerUp)
		if fg, _, _ := style.Decompose(); fg != RgbPowerUp {
			t.Errorf("Expected green power-up, got %v", fg)
		}
	}

	// Scores at a quarter and three quarters on the top row
	expectRune(t, screen, 20, 0, '0')
	expectRune(t, screen, 60, 0, '0')
}

// TestRenderScalesWithTerminal verifies the playfield follows a resized screen
func TestRenderScalesWithTerminal(t *testing.T) {
	screen := newScreen(t, 80, 24)
	defer screen.Fini()

	m := newKickoffMatch(t, nil)
	r := NewTerminalRenderer(screen, 800, 600)
	r.RenderFrame(m)

	screen.SetSize(160, 48)
	r.RenderFrame(m)

	// Left paddle x 10..20 -> cols 2..3 at 0.2 col per unit
	expectRune(t, screen, 2, 25, constants.GlyphPaddle)
	expectRune(t, screen, 3, 25, constants.GlyphPaddle)
	expectRune(t, screen, 4, 25, ' ')
}

// TestRenderWinner verifies the result message is drawn centred once the match ends
func TestRenderWinner(t *testing.T) {
	screen := newScreen(t, 80, 24)
	defer screen.Fini()

	m := newKickoffMatch(t, func(c *config.Config) { c.WinScore = 1 })

	// Both paddles parked at the top; the ball sails past the right paddle low
	hold := game.Input{Up: true}
	for i := 0; i < 500 && !m.Finished(); i++ {
		m.Step(hold, hold)
	}
	if !m.Finished() {
		t.Fatal("Expected match to finish")
	}

	r := NewTerminalRenderer(screen, 800, 600)
	r.RenderFrame(m)

	label := m.WinnerLabel()
	if label != constants.LeftWinsLabel {
		t.Fatalf("Expected left to win, got %q", label)
	}

	x := (80 - len(label)) / 2
	for i, ch := range label {
		style := expectRune(t, screen, x+i, 12, ch)
		if fg, _, _ := style.Decompose(); fg != RgbWinner {
			t.Errorf("Expected winner color at col %d, got %v", x+i, fg)
		}
	}
	expectRune(t, screen, 20, 0, '1')
}

func TestRenderMessage(t *testing.T) {
	screen := newScreen(t, 80, 24)
	defer screen.Fini()

	r := NewTerminalRenderer(screen, 800, 600)
	r.RenderMessage(constants.WelcomeMessage)

	x := (80 - len(constants.WelcomeMessage)) / 2
	for i, ch := range constants.WelcomeMessage {
		expectRune(t, screen, x+i, 12, ch)
	}
	// Nothing else on screen
	expectRune(t, screen, 1, 10, ' ')
}

func TestDrawPowerUpInactive(t *testing.T) {
	screen := newScreen(t, 80, 24)
	defer screen.Fini()

	r := NewTerminalRenderer(screen, 800, 600)
	r.begin()
	style := tcell.StyleDefault.Background(RgbBackground)

	rect := physics.NewRect(100, 100, 20, 20)
	r.drawPowerUp(rect, false, style)
	expectRune(t, screen, 10, 4, ' ')

	r.drawPowerUp(rect, true, style)
	expectRune(t, screen, 10, 4, constants.GlyphPowerUp)
}

// TestCellSpanClipsOffscreen verifies drawing outside the terminal is ignored
func TestCellSpanClipsOffscreen(t *testing.T) {
	screen := newScreen(t, 80, 24)
	defer screen.Fini()

	r := NewTerminalRenderer(screen, 800, 600)
	r.begin()

	defer func() {
		if rec := recover(); rec != nil {
			t.Errorf("Drawing off-screen panicked: %v", rec)
		}
	}()
	r.fillRect(physics.NewRect(-50, -50, 20, 20), constants.GlyphBall, tcell.StyleDefault)
	r.fillRect(physics.NewRect(805, 610, 20, 20), constants.GlyphBall, tcell.StyleDefault)
}
