package variant

import "github.com/hcho112/the-wedding/internal/manifest"

// Select picks the variant a page should render for the given viewport
// width. Absent variants fall through to the next preference; if none of
// the sized variants exist the photo's top-level url is returned, so the
// result is always usable for a non-nil photo.
func Select(photo *manifest.Photo, viewportWidth int) manifest.Variant {
	var order []string
	switch {
	case viewportWidth <= BreakpointTablet:
		order = []string{Tablet, Desktop, Full}
	case viewportWidth <= BreakpointDesktop:
		order = []string{Desktop, Full, Tablet}
	default:
		order = []string{Full, Desktop, Tablet}
	}

	for _, name := range order {
		if v, ok := photo.Variants[name]; ok && v.URL != "" {
			return v
		}
	}

	return manifest.Variant{
		URL:    photo.URL,
		Width:  photo.Width,
		Height: photo.Height,
	}
}
