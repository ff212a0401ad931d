// Package encoder re-encodes resized gallery photos into web-optimized
// formats. WebP is preferred when the external cwebp binary is installed;
// JPEG and PNG are always available via the standard library.
package encoder

import "image"

// Encoder encodes an image to a specific output format.
type Encoder interface {
	// Format returns the output format name ("webp", "jpeg", "png").
	Format() string

	// Encode converts the image to bytes at the given quality (1-100).
	Encode(img image.Image, quality int) ([]byte, error)

	// Available reports whether the encoder is ready to use. External
	// encoders (cwebp) may not be installed.
	Available() bool

	// Extension returns the file extension without the dot.
	Extension() string

	// MIMEType returns the content type to upload variants with.
	MIMEType() string
}
