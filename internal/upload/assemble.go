package upload

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hcho112/the-wedding/internal/manifest"
	"github.com/hcho112/the-wedding/internal/pipeline"
	"github.com/hcho112/the-wedding/internal/variant"
)

// Sentinels for photos whose directory path carries fewer than two
// semantic segments.
const (
	DefaultCategory  = "Uncategorized"
	DefaultTimeOfDay = "Day"
)

// defaultPreference is the order the top-level url/width/height/id are
// chosen in. Anything not listed falls back to variant.Names order.
var defaultPreference = []string{variant.Desktop, variant.Tablet}

// Infer derives the category and time of day from a photo's relative
// directory path. Only the first two segments are meaningful; deeper
// nesting is ignored.
func Infer(relBase string) (category, timeOfDay string) {
	category = DefaultCategory
	timeOfDay = DefaultTimeOfDay

	if relBase == "" {
		return category, timeOfDay
	}
	segments := strings.Split(relBase, "/")
	if segments[0] != "" {
		category = segments[0]
	}
	if len(segments) > 1 && segments[1] != "" {
		timeOfDay = segments[1]
	}
	return category, timeOfDay
}

// Assemble joins the upload results back to each photo's metadata and
// produces the published manifest entries. Photos with zero successful
// uploads are dropped entirely; no placeholder entry is emitted.
func Assemble(records []pipeline.ImageMetadata, results Results) []manifest.Photo {
	var photos []manifest.Photo

	for i, rec := range records {
		uploaded := results[i]
		if len(uploaded) == 0 {
			log.Warn("photo has no uploaded variants, dropping", "photo", rec.OriginalName)
			continue
		}

		category, timeOfDay := Infer(rec.RelBase)

		variants := make(map[string]manifest.Variant, len(uploaded))
		for _, name := range variant.Names {
			local, inMeta := rec.Variants[name]
			remote, inUpload := uploaded[name]
			if !inMeta || !inUpload {
				continue
			}
			variants[name] = manifest.Variant{
				URL:    remote.URL,
				Width:  local.Width,
				Height: local.Height,
			}
		}
		if len(variants) == 0 {
			continue
		}

		photo := manifest.Photo{
			Category:    category,
			TimeOfDay:   timeOfDay,
			BlurDataURL: rec.BlurDataURL,
			Variants:    variants,
		}

		name := defaultVariantName(variants)
		photo.URL = variants[name].URL
		photo.Width = variants[name].Width
		photo.Height = variants[name].Height
		photo.ID = uploaded[name].Key

		photos = append(photos, photo)
	}

	return photos
}

// defaultVariantName picks which variant backs the denormalized top-level
// fields: desktop, then tablet, then the first available in variant.Names order.
func defaultVariantName(variants map[string]manifest.Variant) string {
	for _, name := range defaultPreference {
		if _, ok := variants[name]; ok {
			return name
		}
	}
	for _, name := range variant.Names {
		if _, ok := variants[name]; ok {
			return name
		}
	}
	return ""
}
