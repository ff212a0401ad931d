//go:build ignore

// gen_fixtures creates a small raw photo tree for smoke-testing the
// pipeline end to end.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	os.MkdirAll(filepath.Join(dir, "Ceremony", "Afternoon"), 0o755)
	os.MkdirAll(filepath.Join(dir, "Reception", "Evening"), 0o755)
	os.MkdirAll(filepath.Join(dir, "Portraits"), 0o755)

	// Large landscape shot, wider than every variant target.
	writeJPEG(filepath.Join(dir, "Reception", "Evening", "first-dance.jpg"), gradient(3000, 2000))

	// Mid-size ceremony shots.
	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("vows-%d.jpg", i)
		writeJPEG(filepath.Join(dir, "Ceremony", "Afternoon", name), gradient(1600, 1067))
	}

	// Portrait narrower than the tablet target (no-upscale path).
	writeJPEG(filepath.Join(dir, "Portraits", "couple.jpg"), gradient(900, 1350))

	// Uncategorized photo at the root.
	writePNG(filepath.Join(dir, "venue.png"), gradient(1200, 800))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 6 fixtures in %s\n", dir)
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func writeJPEG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		panic(err)
	}
}

func writePNG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}
