package manifest

import (
	"encoding/json"
	"os"
)

// WriteJSON serializes the manifest as a single JSON array, replacing any
// previous file wholesale. Reruns of the pipeline never merge with an
// earlier manifest.
func WriteJSON(photos []Photo, path string) error {
	data, err := json.MarshalIndent(photos, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
