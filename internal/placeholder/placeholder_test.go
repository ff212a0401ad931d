package placeholder

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img
}

func TestDataURLIsSelfContained(t *testing.T) {
	url, err := DataURL(testImage(800, 600))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, Prefix))

	// The payload must decode back to a real image at placeholder size.
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, Prefix))
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, Width, cfg.Width)
	assert.Equal(t, 24, cfg.Height) // 4:3 source
}

func TestDataURLNarrowSourceNotUpscaled(t *testing.T) {
	url, err := DataURL(testImage(20, 40))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, Prefix))
	require.NoError(t, err)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Width)
}

func TestDataURLEmptyImage(t *testing.T) {
	_, err := DataURL(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	assert.Error(t, err)
}
