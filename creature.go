package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"creaturecapture/internal/screen"
)

// spriteSize is the on-screen edge of the creature sprite
const spriteSize = 150

var messageColor = color.RGBA{80, 80, 80, 255}

// drawCreaturePanel draws the creature's name and sprite, or the loading and
// failure messages in their place
func (g *Game) drawCreaturePanel(dst *ebiten.Image, v screen.View) {
	cx := float64(g.cfg.ScreenWidth) / 2
	top := float64(g.cfg.ScreenHeight) / 6

	if v.Name != "" && !v.Loading {
		drawText(dst, v.Name, g.nameFace, cx, top, color.Black)
		if sprite := g.spriteImage(v); sprite != nil {
			op := &ebiten.DrawImageOptions{}
			b := sprite.Bounds()
			op.GeoM.Scale(spriteSize/float64(b.Dx()), spriteSize/float64(b.Dy()))
			op.GeoM.Translate(cx-spriteSize/2, top+40)
			dst.DrawImage(sprite, op)
		}
	}

	if v.Message != "" {
		y := top + 40 + spriteSize/2
		if v.Name != "" && !v.Loading {
			y = top + 40 + spriteSize + 10
		}
		drawText(dst, v.Message, g.fontFace, cx, y, messageColor)
	}
}

// spriteImage converts the creature's sprite to an ebiten image, once per creature
func (g *Game) spriteImage(v screen.View) *ebiten.Image {
	if v.Sprite == g.spriteSrc {
		return g.sprite
	}
	if g.sprite != nil {
		g.sprite.Deallocate()
		g.sprite = nil
	}
	g.spriteSrc = v.Sprite
	if v.Sprite != nil {
		g.sprite = ebiten.NewImageFromImage(v.Sprite)
	}
	return g.sprite
}
