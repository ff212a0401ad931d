// Package upload publishes optimized variants to the remote blob store and
// assembles the final gallery manifest from the successful uploads.
package upload

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hcho112/the-wedding/internal/blob"
	"github.com/hcho112/the-wedding/internal/hasher"
	"github.com/hcho112/the-wedding/internal/pipeline"
	"github.com/hcho112/the-wedding/internal/variant"
)

// DefaultBatchSize bounds concurrent uploads. Batches run strictly
// sequentially; within a batch every upload settles before the next batch
// starts.
const DefaultBatchSize = 5

// task is one (photo, variant, file) triple on the flattened queue.
type task struct {
	photoIndex  int
	variantName string
	localPath   string
	fileName    string
	relBase     string
}

// Uploaded records one successful upload.
type Uploaded struct {
	URL string
	Key string
}

// Results maps photo index to variant name to its uploaded reference.
// Only successful uploads appear; a photo with no entry at all is dropped
// from the manifest by the assembler.
type Results map[int]map[string]Uploaded

// Batcher drives the upload queue.
type Batcher struct {
	store     blob.Store
	batchSize int
	keyPrefix string
}

// NewBatcher creates a batcher. keyPrefix scopes every object key of this
// run; an empty prefix gets a UTC timestamp so that re-uploads never reuse
// earlier keys.
func NewBatcher(store blob.Store, batchSize int, keyPrefix string) *Batcher {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if keyPrefix == "" {
		keyPrefix = "gallery/" + time.Now().UTC().Format("20060102-150405")
	}
	return &Batcher{store: store, batchSize: batchSize, keyPrefix: keyPrefix}
}

// Run uploads every variant file referenced by the metadata records.
// localRoot is the optimize output directory the variant paths are relative
// to. Per-file failures are logged and skipped; the queue always runs to
// the end.
func (b *Batcher) Run(ctx context.Context, records []pipeline.ImageMetadata, localRoot string) Results {
	var queue []task
	for i, rec := range records {
		for _, name := range variant.Names {
			v, ok := rec.Variants[name]
			if !ok {
				continue
			}
			localPath := filepath.Join(localRoot, filepath.FromSlash(v.Path))
			if _, err := os.Stat(localPath); err != nil {
				log.Warn("variant file missing, skipping", "photo", rec.OriginalName, "variant", name)
				continue
			}
			queue = append(queue, task{
				photoIndex:  i,
				variantName: name,
				localPath:   localPath,
				fileName:    path.Base(v.Path),
				relBase:     rec.RelBase,
			})
		}
	}

	log.Info("upload queue built", "files", len(queue), "batchSize", b.batchSize)

	results := make(Results)
	var failed int

	for start := 0; start < len(queue); start += b.batchSize {
		end := start + b.batchSize
		if end > len(queue) {
			end = len(queue)
		}
		batch := queue[start:end]

		uploaded := make([]*Uploaded, len(batch))
		errs := make([]error, len(batch))

		var wg sync.WaitGroup
		for i, t := range batch {
			wg.Add(1)
			go func(i int, t task) {
				defer wg.Done()
				res, err := b.uploadOne(ctx, t)
				if err != nil {
					errs[i] = err
					return
				}
				uploaded[i] = &res
			}(i, t)
		}
		wg.Wait()

		for i, t := range batch {
			if errs[i] != nil {
				failed++
				log.Error("upload failed, skipping", "variant", t.variantName, "file", t.fileName, "err", errs[i])
				continue
			}
			if results[t.photoIndex] == nil {
				results[t.photoIndex] = make(map[string]Uploaded)
			}
			results[t.photoIndex][t.variantName] = *uploaded[i]
		}
	}

	if failed > 0 {
		log.Warn("uploads finished with failures", "failed", failed, "total", len(queue))
	} else {
		log.Info("uploads finished", "total", len(queue))
	}

	return results
}

func (b *Batcher) uploadOne(ctx context.Context, t task) (Uploaded, error) {
	data, err := os.ReadFile(t.localPath)
	if err != nil {
		return Uploaded{}, fmt.Errorf("read %s: %w", t.fileName, err)
	}

	// A short content hash in the key gives each re-encode its own CDN
	// cache entry.
	hash := hasher.ContentHash(data, 8)
	ext := path.Ext(t.fileName)
	name := t.fileName[:len(t.fileName)-len(ext)]
	key := path.Join(b.keyPrefix, t.relBase, fmt.Sprintf("%s.%s%s", name, hash, ext))

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	res, err := b.store.Put(ctx, key, data, contentType)
	if err != nil {
		return Uploaded{}, err
	}
	return Uploaded{URL: res.URL, Key: res.Key}, nil
}
