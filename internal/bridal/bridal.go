// Package bridal loads the pre-authored bridal-party contour data consumed
// by the hover-to-reveal photo. The data is generated offline; this loader
// only reads and soft-fails.
package bridal

import (
	"encoding/json"
	"os"
)

// DefaultFileName is the well-known location of the contour data.
const DefaultFileName = "bridal-party-contours.json"

// Point is a normalized (0-1) coordinate on the party photo.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is a normalized bounding box used for hover hit-testing.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Member is one person in the party photo with their outline path.
type Member struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	PathData      string `json:"pathData"` // SVG path in normalized coordinates
	NameTagAnchor Point  `json:"nameTagAnchor"`
	HitArea       Rect   `json:"hitArea"`
}

// Party binds the contour set to the manifest photo it was traced from.
type Party struct {
	PhotoID string   `json:"photoId"`
	Members []Member `json:"members"`
}

// Load reads the contour data at path. A missing or unparsable file yields
// nil: the page renders without the overlay rather than failing.
func Load(path string) *Party {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var p Party
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	return &p
}
