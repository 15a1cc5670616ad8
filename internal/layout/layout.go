// Package layout maps tower state to screen coordinates and colors.
// It holds no simulation state; pegs know nothing about where they are drawn.
package layout

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/hanoi-animation/internal/config"
	"github.com/iburimskiy/hanoi-animation/internal/hanoi"
)

// PegX is the horizontal center of p.
func PegX(p hanoi.Peg) float64 {
	return float64(config.WindowWidth)/2 + float64(int(p)-1)*config.PegSpacing
}

// DiscWidth scales disc d of n from MaxDiscWidth (d = 0) to MinDiscWidth.
func DiscWidth(d, n int) float64 {
	if n <= 1 {
		return config.MaxDiscWidth
	}
	f := float64(d) / float64(n-1)
	return config.MaxDiscWidth - f*(config.MaxDiscWidth-config.MinDiscWidth)
}

// SlotY is the top edge of the disc resting at height slot (0 = bottom).
func SlotY(slot int) float64 {
	return float64(config.BaseY - (slot+1)*config.DiscHeight)
}

// DiscColor shades discs from blue (largest) to red (smallest).
func DiscColor(d, n int) color.RGBA {
	f := float64(d+1) / float64(max(n, 1))
	r, g, b := hsvToRgb(240+120*f, 0.85, 0.9)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Flight returns the position of a disc p of the way through a move: lifted
// off fromY, carried across at liftY, then dropped onto toY.
func Flight(fromX, fromY, toX, toY, p float64) (x, y float64) {
	p = clamp01(p)
	lift := float64(config.LiftY)
	switch {
	case p < 1.0/3:
		t := p * 3
		return fromX, fromY + (lift-fromY)*t
	case p < 2.0/3:
		t := (p - 1.0/3) * 3
		return fromX + (toX-fromX)*t, lift
	default:
		t := (p - 2.0/3) * 3
		return toX, lift + (toY-lift)*t
	}
}

// Hit reports whether (x, y) falls inside the rectangle.
func Hit(x, y, rx, ry, w, h int) bool {
	return x >= rx && x <= rx+w && y >= ry && y <= ry+h
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// FormatDuration formats a duration as MM:SS
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
