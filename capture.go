package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"creaturecapture/internal/screen"
)

// ballRestMargin is the distance from the bottom edge to the ball's center at rest
const ballRestMargin = 60

// drawCaptureBall draws the capture ball at the sequencer's current pose
func (g *Game) drawCaptureBall(dst *ebiten.Image, v screen.View) {
	m := v.Ball
	if m.Opacity <= 0 {
		return
	}

	b := g.ball.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(m.Scale, m.Scale)
	op.GeoM.Translate(float64(g.cfg.ScreenWidth)/2, float64(g.cfg.ScreenHeight-ballRestMargin)+m.VerticalOffset)
	op.ColorScale.ScaleAlpha(float32(m.Opacity))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(g.ball, op)
}
