package upload

import (
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hcho112/the-wedding/internal/manifest"
	"github.com/hcho112/the-wedding/internal/pipeline"
	"github.com/hcho112/the-wedding/internal/placeholder"
	"github.com/hcho112/the-wedding/internal/variant"
)

func writeSourceJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 96,
				A: 255,
			})
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, img, &jpeg.Options{Quality: 85}))
}

// The full chain: raw tree -> optimize -> upload -> assemble -> manifest.
func TestPipelineEndToEnd(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	workDir := t.TempDir()
	metaPath := filepath.Join(workDir, pipeline.DefaultMetadataFileName)
	manifestPath := filepath.Join(workDir, manifest.DefaultFileName)

	writeSourceJPEG(t, filepath.Join(srcDir, "Reception", "Evening", "a.jpg"), 3000, 2000)

	_, err := pipeline.Run(pipeline.Config{
		InputDir:     srcDir,
		OutputDir:    outDir,
		Quality:      90,
		MetadataPath: metaPath,
	})
	require.NoError(t, err)

	records, err := pipeline.LoadMetadata(metaPath)
	require.NoError(t, err)
	require.Len(t, records, 1)

	store := &fakeStore{batchSize: 5, posOf: func(string) int { return 0 }, completed: map[int]bool{}}
	results := NewBatcher(store, 5, "gallery/e2e").Run(context.Background(), records, outDir)

	photos := Assemble(records, results)
	require.NoError(t, manifest.WriteJSON(photos, manifestPath))

	s := manifest.Load(manifestPath)
	require.Equal(t, 1, s.Len())

	p := s.All()[0]
	assert.Equal(t, "Reception", p.Category)
	assert.Equal(t, "Evening", p.TimeOfDay)
	assert.Equal(t, 640, p.Variants[variant.Mobile].Width)
	// Full target is wider than the source: capped at native, not enlarged.
	assert.Equal(t, 3000, p.Variants[variant.Full].Width)
	assert.Equal(t, 2000, p.Variants[variant.Full].Height)
	assert.True(t, strings.HasPrefix(p.BlurDataURL, placeholder.Prefix))

	// Desktop backs the denormalized default fields.
	assert.Equal(t, p.Variants[variant.Desktop].URL, p.URL)
	assert.Equal(t, 1920, p.Width)
	assert.NotEmpty(t, p.ID)
	assert.True(t, strings.HasPrefix(p.ID, "gallery/e2e/Reception/Evening/"), "id %q", p.ID)

	// And the runtime selector picks usable references at every width.
	for _, w := range []int{320, 1440, 2400} {
		got := variant.Select(&p, w)
		assert.NotEmpty(t, got.URL, "viewport %d", w)
	}
}
