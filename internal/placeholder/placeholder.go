// Package placeholder synthesizes inline blur placeholders: a tiny
// low-quality copy of a photo, base64-encoded into a data URL that paints
// instantly with no network round trip.
package placeholder

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/disintegration/imaging"
)

const (
	// Width of the downscaled placeholder. 32px blurred up to full size is
	// indistinguishable from a wider base at a fraction of the bytes.
	Width = 32

	// Quality for the placeholder encode. The image is rendered blurred,
	// so artifacts are invisible.
	Quality = 20

	// Prefix every generated data URL starts with.
	Prefix = "data:image/jpeg;base64,"
)

// DataURL returns a self-contained image source for the blurred stand-in.
func DataURL(img image.Image) (string, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return "", fmt.Errorf("placeholder: empty image")
	}

	w := Width
	if bounds.Dx() < w {
		w = bounds.Dx()
	}
	tiny := imaging.Resize(img, w, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, tiny, &jpeg.Options{Quality: Quality}); err != nil {
		return "", fmt.Errorf("placeholder: encode: %w", err)
	}

	return Prefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
