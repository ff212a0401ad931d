package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hcho112/the-wedding/internal/manifest"
)

func photoWith(names ...string) *manifest.Photo {
	p := &manifest.Photo{
		URL:      "https://cdn.example/top.webp",
		Width:    1920,
		Height:   1280,
		Variants: make(map[string]manifest.Variant),
	}
	for _, name := range names {
		p.Variants[name] = manifest.Variant{
			URL:    "https://cdn.example/" + name + ".webp",
			Width:  MaxWidth(name),
			Height: MaxWidth(name) * 2 / 3,
		}
	}
	return p
}

func TestSelectSmallViewportPrefersTablet(t *testing.T) {
	p := photoWith(Mobile, Tablet, Desktop, Full)

	for _, w := range []int{320, 640, 768, BreakpointTablet} {
		got := Select(p, w)
		assert.Equal(t, p.Variants[Tablet], got, "viewport %d", w)
	}
}

func TestSelectFallsThroughMissingVariants(t *testing.T) {
	tests := []struct {
		name     string
		photo    *manifest.Photo
		viewport int
		want     string
	}{
		{"no tablet, use desktop", photoWith(Mobile, Desktop, Full), 320, Desktop},
		{"only full", photoWith(Full), 320, Full},
		{"mid range uses desktop", photoWith(Tablet, Desktop, Full), 1440, Desktop},
		{"mid range without desktop uses full", photoWith(Tablet, Full), 1440, Full},
		{"large viewport uses full", photoWith(Tablet, Desktop, Full), 2000, Full},
		{"large viewport without full uses desktop", photoWith(Tablet, Desktop), 2000, Desktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.photo, tt.viewport)
			assert.Equal(t, tt.photo.Variants[tt.want], got)
		})
	}
}

func TestSelectTotalWithoutAnyVariant(t *testing.T) {
	p := photoWith() // sized variants all absent

	for _, w := range []int{320, 1440, 2000} {
		got := Select(p, w)
		assert.Equal(t, p.URL, got.URL, "viewport %d", w)
		assert.Equal(t, p.Width, got.Width)
		assert.Equal(t, p.Height, got.Height)
	}
}

func TestSelectSkipsEmptyURL(t *testing.T) {
	p := photoWith(Desktop)
	p.Variants[Tablet] = manifest.Variant{Width: 1080, Height: 720} // no url

	got := Select(p, 320)
	assert.Equal(t, p.Variants[Desktop], got)
}
