package encoder

import (
	"fmt"
	"strings"
)

// preference is the format priority for gallery variants.
var preference = []string{"webp", "jpeg", "png"}

// Registry holds the encoders that probed as available.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry probes every encoder and registers the available ones.
func NewRegistry() *Registry {
	r := &Registry{encoders: make(map[string]Encoder)}
	for _, enc := range []Encoder{&WebPEncoder{}, &JPEGEncoder{}, &PNGEncoder{}} {
		if enc.Available() {
			r.encoders[enc.Format()] = enc
		}
	}
	return r
}

// Get returns an encoder for the given format, or nil if unavailable.
func (r *Registry) Get(format string) Encoder {
	return r.encoders[strings.ToLower(format)]
}

// Best returns the preferred available encoder for a photo. Images with an
// alpha channel fall back to PNG when WebP is not available, since JPEG
// would flatten transparency.
func (r *Registry) Best(hasAlpha bool) Encoder {
	if enc := r.encoders["webp"]; enc != nil {
		return enc
	}
	if hasAlpha {
		if enc := r.encoders["png"]; enc != nil {
			return enc
		}
	}
	return r.encoders["jpeg"]
}

// Available returns the available format names in preference order.
func (r *Registry) Available() []string {
	var out []string
	for _, f := range preference {
		if _, ok := r.encoders[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// String summarizes encoder availability for startup diagnostics.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
