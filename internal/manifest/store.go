package manifest

import (
	"encoding/json"
	"os"
)

// Store holds the parsed manifest and answers runtime lookups.
// It is read-only after Load; pages treat an empty store as a valid,
// renderable "no data" state.
type Store struct {
	photos []Photo
	byID   map[string]int
}

// Load reads the manifest at path. A missing or unparsable file yields an
// empty store rather than an error, so callers degrade to rendering nothing.
func Load(path string) *Store {
	s := &Store{byID: make(map[string]int)}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var photos []Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		return s
	}

	s.photos = photos
	for i, p := range photos {
		s.byID[p.ID] = i
	}
	return s
}

// All returns every manifest entry in file order.
func (s *Store) All() []Photo {
	return s.photos
}

// ByID returns the entry whose id matches, or nil.
func (s *Store) ByID(id string) *Photo {
	i, ok := s.byID[id]
	if !ok {
		return nil
	}
	return &s.photos[i]
}

// ByCategory returns every entry in the given category, in file order.
func (s *Store) ByCategory(category string) []Photo {
	var out []Photo
	for _, p := range s.photos {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Len reports the number of loaded entries.
func (s *Store) Len() int {
	return len(s.photos)
}
