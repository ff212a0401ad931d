package pipeline

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/hcho112/the-wedding/internal/encoder"
	"github.com/hcho112/the-wedding/internal/placeholder"
	"github.com/hcho112/the-wedding/internal/variant"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// processImage turns one raw photo into the configured resized variants
// plus a blur placeholder, and returns the metadata record describing them.
func processImage(src Source, cfg Config, registry *encoder.Registry) (ImageMetadata, error) {
	meta := ImageMetadata{
		OriginalName: src.Name,
		RelBase:      src.RelBase,
		Variants:     make(map[string]VariantFile, len(variant.Names)),
	}

	f, err := os.Open(src.AbsPath)
	if err != nil {
		return meta, fmt.Errorf("open %s: %w", src.Name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return meta, fmt.Errorf("decode %s: %w", src.Name, err)
	}

	enc := registry.Best(hasAlpha(img))
	if enc == nil {
		return meta, fmt.Errorf("no encoder available for %s", src.Name)
	}

	if src.RelBase != "" {
		if err := os.MkdirAll(filepath.Join(cfg.OutputDir, filepath.FromSlash(src.RelBase)), 0o755); err != nil {
			return meta, fmt.Errorf("create output dir for %s: %w", src.Name, err)
		}
	}

	nameNoExt := strings.TrimSuffix(src.Name, filepath.Ext(src.Name))
	origW := img.Bounds().Dx()

	for _, name := range variant.Names {
		w := variant.TargetWidth(name, origW)
		if w <= 0 {
			continue
		}

		// Resize by width only; height follows the source aspect ratio.
		resized := imaging.Resize(img, w, 0, imaging.Lanczos)

		data, err := enc.Encode(resized, cfg.Quality)
		if err != nil {
			return meta, fmt.Errorf("encode %s %s: %w", src.Name, name, err)
		}

		relPath := path.Join(src.RelBase, fmt.Sprintf("%s-%s.%s", nameNoExt, name, enc.Extension()))
		outPath := filepath.Join(cfg.OutputDir, filepath.FromSlash(relPath))
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return meta, fmt.Errorf("write %s: %w", relPath, err)
		}

		// Read the actual dimensions back from the encoded bytes. The
		// no-upscale cap means the requested width is not authoritative.
		dims, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return meta, fmt.Errorf("measure %s: %w", relPath, err)
		}

		meta.Variants[name] = VariantFile{
			Width:  dims.Width,
			Height: dims.Height,
			Path:   relPath,
		}
	}

	blur, err := placeholder.DataURL(img)
	if err != nil {
		return meta, fmt.Errorf("placeholder %s: %w", src.Name, err)
	}
	meta.BlurDataURL = blur

	return meta, nil
}

// hasAlpha reports whether an image carries any transparency.
func hasAlpha(img image.Image) bool {
	if op, ok := img.(interface{ Opaque() bool }); ok {
		return !op.Opaque()
	}
	return false
}
