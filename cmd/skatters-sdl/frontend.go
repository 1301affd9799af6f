//go:build sdl

package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/lixenwraith/skatters/config"
	"github.com/lixenwraith/skatters/constants"
	"github.com/lixenwraith/skatters/game"
	"github.com/lixenwraith/skatters/physics"
	"github.com/lixenwraith/skatters/render"
)

const fontSize = 24

// sdlFrontend draws the match in a window at playfield resolution.
// SDL calls must stay on the main thread.
type sdlFrontend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font // nil when no font could be opened; text is skipped
	width    int32
	height   int32
	quit     bool
}

func newSDLFrontend(cfg config.Config, fontPath string) (*sdlFrontend, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	sdl.SetHint("SDL_RENDER_SCALE_QUALITY", "linear")

	w, h := int32(cfg.ScreenWidth), int32(cfg.ScreenHeight)
	window, err := sdl.CreateWindow(constants.Title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		w, h, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, err
	}

	f := &sdlFrontend{window: window, renderer: renderer, width: w, height: h}

	if err := ttf.Init(); err != nil {
		log.Printf("TTF initialization failed: %v (text disabled)", err)
		return f, nil
	}
	if f.font, err = ttf.OpenFont(fontPath, fontSize); err != nil {
		log.Printf("Failed to open font %s: %v (text disabled)", fontPath, err)
		f.font = nil
	}
	return f, nil
}

func (f *sdlFrontend) Close() {
	if f.font != nil {
		f.font.Close()
	}
	if ttf.WasInit() != 0 {
		ttf.Quit()
	}
	f.renderer.Destroy()
	f.window.Destroy()
	sdl.Quit()
}

// Poll drains window events and samples the keyboard. SDL reports real key
// state, so no hold window is needed here.
func (f *sdlFrontend) Poll(now time.Time) (left, right game.Input, quit bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			f.quit = true
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && (ev.Keysym.Sym == sdl.K_ESCAPE || ev.Keysym.Sym == sdl.K_q) {
				f.quit = true
			}
		}
	}

	keys := sdl.GetKeyboardState()
	left = game.Input{Up: keys[sdl.SCANCODE_W] != 0, Down: keys[sdl.SCANCODE_S] != 0}
	right = game.Input{Up: keys[sdl.SCANCODE_UP] != 0, Down: keys[sdl.SCANCODE_DOWN] != 0}
	return left, right, f.quit
}

func (f *sdlFrontend) Welcome(text string) {
	f.clear()
	f.drawCenteredText(text, f.height/2, render.RgbForeground)
	f.renderer.Present()
}

func (f *sdlFrontend) Render(m *game.Match) {
	f.clear()

	// Dashed centre line
	f.setColor(render.RgbCenterLine)
	for y := int32(0); y < f.height; y += 20 {
		f.renderer.FillRect(&sdl.Rect{X: f.width/2 - 1, Y: y, W: 2, H: 10})
	}

	f.fillRect(m.LeftPaddle(), render.RgbForeground)
	f.fillRect(m.RightPaddle(), render.RgbForeground)

	if rect, active := m.PowerUp(); active {
		f.fillRect(rect, render.RgbPowerUp)
	}

	vx, _ := m.BallVelocity()
	f.drawBall(m.Ball(), render.GetSpeedColor(vx))

	f.drawText(fmt.Sprintf("%d", m.LeftScore()), f.width/4, constants.ScoreY, render.RgbScore)
	f.drawText(fmt.Sprintf("%d", m.RightScore()), f.width*3/4, constants.ScoreY, render.RgbScore)

	if label := m.WinnerLabel(); label != "" {
		f.drawCenteredText(label, f.height/2, render.RgbWinner)
	}

	f.renderer.Present()
}

func (f *sdlFrontend) clear() {
	f.setColor(render.RgbBackground)
	f.renderer.Clear()
}

func (f *sdlFrontend) setColor(c tcell.Color) {
	r, g, b := rgb(c)
	f.renderer.SetDrawColor(r, g, b, 255)
}

func (f *sdlFrontend) fillRect(rect physics.Rect, c tcell.Color) {
	f.setColor(c)
	f.renderer.FillRect(&sdl.Rect{X: int32(rect.X), Y: int32(rect.Y), W: int32(rect.W), H: int32(rect.H)})
}

// drawBall draws a filled circle, falling back to the square when gfx fails
func (f *sdlFrontend) drawBall(rect physics.Rect, c tcell.Color) {
	cx, cy := rect.Center()
	r, g, b := rgb(c)
	if ok := gfx.FilledCircleRGBA(f.renderer, int32(cx), int32(cy), int32(rect.W/2), r, g, b, 255); !ok {
		f.fillRect(rect, c)
	}
}

func (f *sdlFrontend) drawText(text string, x, y int32, c tcell.Color) {
	if f.font == nil {
		return
	}
	r, g, b := rgb(c)
	surface, err := f.font.RenderUTF8Blended(text, sdl.Color{R: r, G: g, B: b, A: 255})
	if err != nil {
		log.Printf("render text: %v", err)
		return
	}
	defer surface.Free()

	texture, err := f.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		log.Printf("text texture: %v", err)
		return
	}
	defer texture.Destroy()

	f.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
}

func (f *sdlFrontend) drawCenteredText(text string, y int32, c tcell.Color) {
	if f.font == nil {
		return
	}
	w, h, err := f.font.SizeUTF8(text)
	if err != nil {
		return
	}
	f.drawText(text, (f.width-int32(w))/2, y-int32(h)/2, c)
}

func rgb(c tcell.Color) (uint8, uint8, uint8) {
	r, g, b := c.RGB()
	return uint8(r), uint8(g), uint8(b)
}
