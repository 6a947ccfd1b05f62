package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"creaturecapture/assets"
	"creaturecapture/internal/config"
	"creaturecapture/internal/loader"
	"creaturecapture/internal/pokeapi"
	"creaturecapture/internal/screen"
)

var backgroundColor = color.RGBA{247, 247, 247, 255}

// Game is the main game struct
type Game struct {
	ctx    context.Context
	cfg    config.Config
	logger *slog.Logger

	loader *loader.Loader
	screen *screen.Screen

	titleFace text.Face
	nameFace  text.Face
	fontFace  text.Face

	ball   *ebiten.Image
	button image.Rectangle

	// Sprite of the creature on screen, converted once per creature
	spriteSrc image.Image
	sprite    *ebiten.Image

	touchIDs []ebiten.TouchID
}

// NewGame creates the game and requests the first creature
func NewGame(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Game, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}

	ballImg, err := assets.CaptureBall()
	if err != nil {
		return nil, err
	}

	client := pokeapi.New(pokeapi.Config{BaseURL: cfg.BaseURL, Timeout: cfg.Timeout})
	l := loader.New(client, logger)

	g := &Game{
		ctx:       ctx,
		cfg:       cfg,
		logger:    logger,
		loader:    l,
		titleFace: &text.GoTextFace{Source: bold, Size: 28},
		nameFace:  &text.GoTextFace{Source: bold, Size: 24},
		fontFace:  &text.GoTextFace{Source: regular, Size: 16},
		ball:      ebiten.NewImageFromImage(ballImg),
		button:    buttonRect(cfg.ScreenWidth, cfg.ScreenHeight),
		screen: screen.New(screen.Config{
			ScreenHeight: cfg.ScreenHeight,
			StartID:      cfg.StartID,
			Language:     cfg.Language,
		}, l, logger),
	}

	if err := g.screen.Start(ctx); err != nil {
		return nil, fmt.Errorf("load first creature: %w", err)
	}
	return g, nil
}

// Update updates the game state
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.throwPressed() {
		g.screen.Throw()
	}
	g.screen.Tick(g.ctx, frameDuration())
	return nil
}

// frameDuration is the simulated time that passes per Update call
func frameDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Draw draws the game
func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(backgroundColor)

	v := g.screen.View()
	g.drawTitle(dst, v)
	g.drawCreaturePanel(dst, v)
	g.drawThrowButton(dst, v)

	// Layered above everything else
	g.drawCaptureBall(dst, v)
}

// Layout implements ebiten.Game's Layout
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}

// drawText draws s horizontally centered on x
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

func (g *Game) drawTitle(dst *ebiten.Image, v screen.View) {
	drawText(dst, v.Title, g.titleFace, float64(g.cfg.ScreenWidth)/2, 40, color.Black)
}
