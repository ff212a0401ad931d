package encoder

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, alpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 180, G: 120, B: 90, A: alpha})
		}
	}
	return img
}

func TestRegistryAlwaysHasAFallback(t *testing.T) {
	r := NewRegistry()

	// jpeg and png are stdlib encoders; they are always registered.
	require.NotNil(t, r.Get("jpeg"))
	require.NotNil(t, r.Get("png"))
	assert.NotNil(t, r.Best(false))
	assert.NotNil(t, r.Best(true))
	assert.NotEmpty(t, r.Available())
}

func TestBestAvoidsJPEGForAlpha(t *testing.T) {
	r := NewRegistry()

	enc := r.Best(true)
	require.NotNil(t, enc)
	assert.NotEqual(t, "jpeg", enc.Format())
}

func TestJPEGEncodeDecodable(t *testing.T) {
	enc := &JPEGEncoder{}
	data, err := enc.Encode(solid(64, 48, 255), 100)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)
}

func TestPNGEncodeDecodable(t *testing.T) {
	enc := &PNGEncoder{}
	data, err := enc.Encode(solid(32, 32, 128), 0)
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 32, cfg.Width)
}

func TestWebPEncodeRoundtrip(t *testing.T) {
	enc := &WebPEncoder{}
	if !enc.Available() {
		t.Skip("cwebp not installed")
	}

	data, err := enc.Encode(solid(64, 48, 255), 90)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
