package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// Source represents a discovered raw photo.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// Name is the file name including extension.
	Name string
	// RelBase is the containing directory relative to the source root,
	// slash-separated. Empty for files directly under the root.
	//
	// The first segment is the gallery category and the second the time
	// of day. Changing folder depth is a breaking change for consumers.
	RelBase string
	// Size is the file size in bytes.
	Size int64
}

// imageExtensions lists recognized raster image extensions.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// ScanImages walks the source root and returns every raster image file in
// traversal order. Hidden directories and non-image files are skipped.
func ScanImages(root string) ([]Source, error) {
	var sources []Source

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && info.Name() != "." {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !imageExtensions[ext] {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		relBase := filepath.ToSlash(filepath.Dir(relPath))
		if relBase == "." {
			relBase = ""
		}

		sources = append(sources, Source{
			AbsPath: path,
			Name:    info.Name(),
			RelBase: relBase,
			Size:    info.Size(),
		})
		return nil
	})

	return sources, err
}
