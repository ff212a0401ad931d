package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hcho112/the-wedding/internal/encoder"
)

// DefaultBatchSize bounds how many photos are decoded and re-encoded
// concurrently. Batches run strictly sequentially, which caps peak memory
// and open file handles while keeping the I/O-bound encodes parallel.
const DefaultBatchSize = 5

// Config holds the parameters of one optimize run.
type Config struct {
	InputDir     string
	OutputDir    string
	Quality      int // 1-100; variants are encoded at maximum quality by default
	BatchSize    int
	MetadataPath string
}

// Report summarizes an optimize run for the operator.
type Report struct {
	Photos      int
	Failed      int
	Variants    int
	OutputBytes int64
	Elapsed     time.Duration
}

// Run executes the optimize step: scan the source tree, generate variants
// and placeholders in batches, and persist the metadata artifact.
//
// A failure on one photo is logged and the photo contributes no metadata
// record; only a missing source tree or a run where every photo failed
// aborts the step.
func Run(cfg Config) (*Report, error) {
	start := time.Now()

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Quality <= 0 {
		cfg.Quality = 100
	}

	if _, err := os.Stat(cfg.InputDir); err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	registry := encoder.NewRegistry()
	log.Debug("probed encoders", "available", registry.String())

	sources, err := ScanImages(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", cfg.InputDir)
	}
	log.Info("scanned source tree", "photos", len(sources))

	var records []ImageMetadata
	var failed int

	for batchStart := 0; batchStart < len(sources); batchStart += cfg.BatchSize {
		end := batchStart + cfg.BatchSize
		if end > len(sources) {
			end = len(sources)
		}
		batch := sources[batchStart:end]

		// Results are addressed by index within the batch, so concurrent
		// workers never contend on the slice.
		results := make([]ImageMetadata, len(batch))
		errs := make([]error, len(batch))

		var wg sync.WaitGroup
		for i, src := range batch {
			wg.Add(1)
			go func(i int, src Source) {
				defer wg.Done()
				results[i], errs[i] = processImage(src, cfg, registry)
			}(i, src)
		}
		wg.Wait()

		for i := range batch {
			if errs[i] != nil {
				failed++
				log.Error("photo failed, skipping", "photo", batch[i].Name, "err", errs[i])
				continue
			}
			records = append(records, results[i])
			log.Debug("processed photo", "photo", batch[i].Name, "variants", len(results[i].Variants))
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("all %d images failed to process", len(sources))
	}

	if err := WriteMetadata(records, cfg.MetadataPath); err != nil {
		return nil, fmt.Errorf("write metadata: %w", err)
	}

	report := &Report{
		Photos:  len(records),
		Failed:  failed,
		Elapsed: time.Since(start),
	}
	for _, r := range records {
		report.Variants += len(r.Variants)
		for _, v := range r.Variants {
			if info, err := os.Stat(filepath.Join(cfg.OutputDir, filepath.FromSlash(v.Path))); err == nil {
				report.OutputBytes += info.Size()
			}
		}
	}

	return report, nil
}
