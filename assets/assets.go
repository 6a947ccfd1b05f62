// Package assets embeds the static images shipped with the app.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

//go:embed capture_ball.png
var captureBallPNG []byte

// CaptureBall decodes the capture-ball sprite
func CaptureBall() (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(captureBallPNG))
	if err != nil {
		return nil, fmt.Errorf("decode capture ball: %w", err)
	}
	return img, nil
}
