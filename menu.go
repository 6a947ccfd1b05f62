package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"creaturecapture/internal/screen"
)

const (
	buttonWidth  = 220
	buttonHeight = 44
)

var (
	buttonColor         = color.RGBA{33, 150, 243, 255}
	buttonDisabledColor = color.RGBA{180, 180, 180, 255}
)

// buttonRect places the throw button below the creature panel
func buttonRect(screenWidth, screenHeight int) image.Rectangle {
	x := (screenWidth - buttonWidth) / 2
	y := screenHeight*5/8 - buttonHeight/2
	return image.Rect(x, y, x+buttonWidth, y+buttonHeight)
}

// throwPressed reports a throw from keyboard, mouse or touch this tick
func (g *Game) throwPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if image.Pt(x, y).In(g.button) {
			return true
		}
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if image.Pt(x, y).In(g.button) {
			return true
		}
	}
	return false
}

// drawThrowButton draws the throw button, greyed out while it is ignored
func (g *Game) drawThrowButton(dst *ebiten.Image, v screen.View) {
	clr := buttonColor
	if !v.ButtonEnabled {
		clr = buttonDisabledColor
	}
	r := g.button
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, true)

	labelY := float64(r.Min.Y) + float64(r.Dy())/2 - 10
	drawText(dst, v.Button, g.fontFace, float64(r.Min.X)+float64(r.Dx())/2, labelY, color.White)
}
