package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultMetadataFileName is the well-known location of the intermediate
// metadata artifact, written by optimize and consumed by upload.
const DefaultMetadataFileName = "image-metadata.json"

// VariantFile describes one generated variant on local disk.
type VariantFile struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Path   string `json:"path"` // relative to the optimize output root, slash-separated
}

// ImageMetadata is the per-photo record of the optimize step. Written once,
// consumed once by the upload step, never mutated.
type ImageMetadata struct {
	OriginalName string                 `json:"originalName"`
	RelBase      string                 `json:"relativePathBase"`
	Variants     map[string]VariantFile `json:"variants"`
	BlurDataURL  string                 `json:"blurDataUrl"`
}

// WriteMetadata persists the metadata list as a single JSON array.
func WriteMetadata(records []ImageMetadata, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// LoadMetadata reads a metadata artifact. Unlike the runtime manifest
// reader this is a hard failure: the upload step cannot start without it.
func LoadMetadata(path string) ([]ImageMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	var records []ImageMetadata
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	return records, nil
}
