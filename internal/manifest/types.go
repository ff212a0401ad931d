package manifest

// Variant is one uploaded rendition of a photo at a specific maximum width.
type Variant struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Photo is one entry of the published gallery manifest.
//
// ID is the remote storage key of the default variant, so it is stable only
// as long as the upload step is not re-run. URL, Width and Height duplicate
// one variant (desktop preferred, then tablet, then first available) so that
// consumers that do not care about responsive sizes need no special-case code.
type Photo struct {
	ID          string             `json:"id"`
	Category    string             `json:"category"`
	TimeOfDay   string             `json:"timeOfDay"`
	BlurDataURL string             `json:"blurDataUrl"`
	Variants    map[string]Variant `json:"variants"`
	URL         string             `json:"url"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
}

// DefaultFileName is the well-known manifest location the running
// application reads at request time.
const DefaultFileName = "photo-manifest.json"
