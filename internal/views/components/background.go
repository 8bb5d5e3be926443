package components

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"fitness-tracker/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// FallbackColor is shown when no background image can be loaded.
var FallbackColor = color.NRGBA{R: 0xf0, G: 0xf4, B: 0xf8, A: 0xff}

// Background is the window backdrop: an image stretched to the window, or a
// plain colour.
type Background struct {
	object   fyne.CanvasObject
	hasImage bool
}

// NewBackground loads path, degrading to FallbackColor if the file is missing
// or not a decodable image.
func NewBackground(path string, log logger.Logger) *Background {
	if err := checkImage(path); err != nil {
		log.Warning("background image unavailable, using plain colour", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return &Background{object: canvas.NewRectangle(FallbackColor)}
	}

	img := canvas.NewImageFromFile(path)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleSmooth

	log.Debug("background image loaded", map[string]interface{}{"path": path})
	return &Background{object: img, hasImage: true}
}

func checkImage(path string) error {
	if path == "" {
		return fmt.Errorf("no background image configured")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// HasImage reports whether an image, rather than the fallback colour, is shown.
func (b *Background) HasImage() bool {
	return b.hasImage
}

func (b *Background) GetObject() fyne.CanvasObject {
	return b.object
}
