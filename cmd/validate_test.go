package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hcho112/the-wedding/internal/manifest"
)

func validPhoto() manifest.Photo {
	return manifest.Photo{
		ID:          "gallery/run/Ceremony/Afternoon/vows-desktop.ab12cd34.webp",
		Category:    "Ceremony",
		TimeOfDay:   "Afternoon",
		BlurDataURL: "data:image/jpeg;base64,/9j/4AAQ",
		Variants: map[string]manifest.Variant{
			"desktop": {URL: "https://cdn.example/vows-desktop.webp", Width: 1920, Height: 1280},
		},
		URL:    "https://cdn.example/vows-desktop.webp",
		Width:  1920,
		Height: 1280,
	}
}

func TestValidateManifestOK(t *testing.T) {
	assert.Empty(t, validateManifest([]manifest.Photo{validPhoto()}))
}

func TestValidateManifestFlagsProblems(t *testing.T) {
	bad := validPhoto()
	bad.ID = ""
	bad.BlurDataURL = "http://example.com/not-inline.jpg"
	bad.Variants["poster"] = manifest.Variant{URL: "", Width: 0, Height: 0}

	errs := validateManifest([]manifest.Photo{bad})
	assert.NotEmpty(t, errs)

	joined := ""
	for _, e := range errs {
		joined += e + "\n"
	}
	assert.Contains(t, joined, "missing id")
	assert.Contains(t, joined, "not an inline image")
	assert.Contains(t, joined, `unknown variant "poster"`)
	assert.Contains(t, joined, "empty url")
}

func TestValidateManifestDuplicateIDs(t *testing.T) {
	errs := validateManifest([]manifest.Photo{validPhoto(), validPhoto()})
	assert.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "duplicate id")
}
