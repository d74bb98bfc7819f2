package window

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// IconSize is the edge length of the application icon in pixels.
const IconSize = 64

//go:embed icon.png
var iconPNG []byte

// DefaultIcon decodes the embedded 64x64 RGBA application icon.
func DefaultIcon() (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(iconPNG))
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon: %w", err)
	}
	if b := img.Bounds(); b.Dx() != IconSize || b.Dy() != IconSize {
		return nil, fmt.Errorf("icon is %dx%d, want %dx%d", b.Dx(), b.Dy(), IconSize, IconSize)
	}
	return img, nil
}

// iconSupported reports whether the window icon is set at runtime. Windows
// takes it from the executable's resources and macOS from the app bundle.
func iconSupported(goos string) bool {
	switch goos {
	case "windows", "darwin":
		return false
	default:
		return true
	}
}
