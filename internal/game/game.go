// Package game is the ebiten front end: it feeds input to a session, paces it
// with the game loop, and draws the tower.
package game

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/hanoi-animation/internal/config"
	"github.com/iburimskiy/hanoi-animation/internal/layout"
	"github.com/iburimskiy/hanoi-animation/internal/session"
)

type button int

const (
	noButton button = iota
	startButton
	resetButton
)

type Game struct {
	sess  *session.Session
	sound *clicker
	log   *slog.Logger

	// dialogs report back to Update through this channel
	dialogs   chan dialogResult
	prompting bool

	// button state
	hovered button
	pressed button

	prevState session.State
	lastErr   error
}

func New(s config.Settings, log *slog.Logger) *Game {
	s = s.Clamped()
	g := &Game{
		sound:   openSound(s.Sound, log),
		log:     log,
		dialogs: make(chan dialogResult, 1),
	}
	g.sess = session.New(s, log, g.sound)
	return g
}

func (g *Game) Update() error {
	g.drainDialogs()

	mouseX, mouseY := ebiten.CursorPosition()
	g.hovered = noButton
	switch {
	case layout.Hit(mouseX, mouseY, config.StartButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight):
		g.hovered = startButton
	case layout.Hit(mouseX, mouseY, config.ResetButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight):
		g.hovered = resetButton
	}
	if g.hovered != noButton && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = g.hovered
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressed != noButton && g.pressed == g.hovered {
			g.click(g.pressed)
		}
		g.pressed = noButton
	}

	state := g.sess.State()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.click(startButton)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.click(resetButton)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp) && state.CanChangeDiscs():
		g.setDiscs(g.sess.Discs() + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown) && state.CanChangeDiscs():
		g.setDiscs(g.sess.Discs() - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyN) && state.CanChangeDiscs():
		g.promptDiscs()
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.sess.SetSpeed(g.sess.Speed() + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.sess.SetSpeed(g.sess.Speed() - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.log.Debug("sound", "on", g.sound.toggle())
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	if _, err := g.sess.Update(dt); err != nil {
		g.lastErr = err
	}

	if now := g.sess.State(); now != g.prevState {
		if now == session.Done {
			g.announce(g.sess.Discs(), g.sess.Tower().Count(), g.sess.Elapsed())
		}
		g.prevState = now
	}
	return nil
}

func (g *Game) click(b button) {
	state := g.sess.State()
	var err error
	switch {
	case b == startButton && state.CanStart():
		err = g.sess.Start()
	case b == resetButton && state.CanReset():
		err = g.sess.Reset()
	default:
		return
	}
	if err != nil {
		g.lastErr = err
		return
	}
	g.lastErr = nil
}

func (g *Game) setDiscs(n int) {
	if err := g.sess.SetDiscs(n); err != nil {
		g.lastErr = err
		return
	}
	g.lastErr = nil
}

func (g *Game) drainDialogs() {
	select {
	case res := <-g.dialogs:
		g.prompting = false
		switch {
		case errors.Is(res.err, errCanceled):
		case res.err != nil:
			g.lastErr = res.err
		case g.sess.State().CanChangeDiscs():
			g.setDiscs(res.discs)
		}
	default:
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
