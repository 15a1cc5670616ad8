package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/hanoi-animation/internal/config"
	"github.com/iburimskiy/hanoi-animation/internal/hanoi"
	"github.com/iburimskiy/hanoi-animation/internal/layout"
)

var (
	pegColor    = color.RGBA{R: 0, G: 100, B: 0, A: 255} // darkgreen
	baseColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	borderColor = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	greyedColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawBoard(screen)
	g.drawDiscs(screen)
	g.drawButton(screen, startButton, config.StartButtonX, "start", g.sess.State().CanStart())
	g.drawButton(screen, resetButton, config.ResetButtonX, "reset", g.sess.State().CanReset())
	g.drawStatus(screen)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	for y := 0; y < config.WindowHeight; y += 4 {
		ratio := float64(y) / float64(config.WindowHeight)
		shade := uint8(235 - 30*ratio)
		vector.DrawFilledRect(screen, 0, float32(y), config.WindowWidth, 4, color.RGBA{R: shade, G: shade, B: shade, A: 255}, false)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	left := layout.PegX(hanoi.A) - config.MaxDiscWidth/2 - 10
	right := layout.PegX(hanoi.C) + config.MaxDiscWidth/2 + 10
	vector.DrawFilledRect(screen, float32(left), config.BaseY, float32(right-left), 10, baseColor, false)
	for _, p := range hanoi.Pegs {
		x := layout.PegX(p) - config.PegWidth/2
		vector.DrawFilledRect(screen, float32(x), config.BaseY-config.PegHeight, config.PegWidth, config.PegHeight, pegColor, false)
	}
}

func (g *Game) drawDiscs(screen *ebiten.Image) {
	tower := g.sess.Tower()
	n := tower.Discs()
	move, progress, flying := g.sess.InFlight()

	for _, p := range hanoi.Pegs {
		discs := tower.Peg(p)
		if flying && p == move.From && len(discs) > 0 {
			discs = discs[:len(discs)-1]
		}
		for slot, d := range discs {
			drawDisc(screen, d, n, layout.PegX(p), layout.SlotY(slot))
		}
	}
	if !flying {
		return
	}
	d, ok := tower.Top(move.From)
	if !ok {
		return
	}
	fromY := layout.SlotY(len(tower.Peg(move.From)) - 1)
	toY := layout.SlotY(len(tower.Peg(move.To)))
	x, y := layout.Flight(layout.PegX(move.From), fromY, layout.PegX(move.To), toY, progress)
	drawDisc(screen, d, n, x, y)
}

func drawDisc(screen *ebiten.Image, d, n int, centerX, top float64) {
	w := layout.DiscWidth(d, n)
	x := centerX - w/2
	vector.DrawFilledRect(screen, float32(x), float32(top), float32(w), config.DiscHeight-1, layout.DiscColor(d, n), false)
	vector.StrokeRect(screen, float32(x), float32(top), float32(w), config.DiscHeight-1, 1, baseColor, false)
}

func (g *Game) drawButton(screen *ebiten.Image, b button, x int, label string, enabled bool) {
	var bgColor color.Color
	switch {
	case !enabled:
		bgColor = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	case g.pressed == b:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	case g.hovered == b:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, float32(x), config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)

	border := borderColor
	if !enabled {
		border = greyedColor
	}
	vector.StrokeRect(screen, float32(x), config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, border, false)

	textWidth := len(label) * 6 // debug font glyph width
	ebitenutil.DebugPrintAt(screen, label, x+(config.ButtonWidth-textWidth)/2, config.ButtonY+(config.ButtonHeight-16)/2)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := fmt.Sprintf("discs: %d   speed: %d   move: %d   time: %s   [%s]",
		g.sess.Discs(), g.sess.Speed(), g.sess.Tower().Count(),
		layout.FormatDuration(g.sess.Elapsed()), g.sess.State())
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	help := "Space start  R reset  Up/Down discs  N enter discs  Left/Right speed  S sound  Q quit"
	if g.lastErr != nil {
		help = "Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, help, 12, 28)
}
