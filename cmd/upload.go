package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hcho112/the-wedding/internal/blob"
	"github.com/hcho112/the-wedding/internal/config"
	"github.com/hcho112/the-wedding/internal/manifest"
	"github.com/hcho112/the-wedding/internal/pipeline"
	"github.com/hcho112/the-wedding/internal/upload"
)

var (
	uploadMetadata  string
	uploadLocalRoot string
	uploadManifest  string
	uploadBatchSize int
	uploadKeyPrefix string
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload optimized variants and assemble the gallery manifest",
	Long: `Reads the metadata artifact written by optimize, uploads every variant
file to the configured blob store in bounded batches, and writes the
published manifest. Photos whose every upload failed are dropped; the
previous manifest is replaced wholesale.

Credentials come from the environment (or a .env file):
S3_BUCKET, S3_ACCESS_KEY, S3_SECRET_KEY, and optionally S3_REGION,
S3_ENDPOINT, PUBLIC_BASE_URL.`,
	Args: cobra.NoArgs,
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadMetadata, "metadata", pipeline.DefaultMetadataFileName, "metadata artifact path")
	uploadCmd.Flags().StringVar(&uploadLocalRoot, "local-root", "./optimized", "directory the variant paths are relative to")
	uploadCmd.Flags().StringVar(&uploadManifest, "manifest", manifest.DefaultFileName, "manifest output path")
	uploadCmd.Flags().IntVar(&uploadBatchSize, "batch-size", upload.DefaultBatchSize, "files uploaded per batch")
	uploadCmd.Flags().StringVar(&uploadKeyPrefix, "key-prefix", "", "remote key prefix (default: timestamped)")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	records, err := pipeline.LoadMetadata(uploadMetadata)
	if err != nil {
		return fmt.Errorf("metadata: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("metadata artifact %s is empty; run optimize first", uploadMetadata)
	}

	localRoot, err := filepath.Abs(uploadLocalRoot)
	if err != nil {
		return fmt.Errorf("resolve local root: %w", err)
	}

	ctx := cmd.Context()

	store, err := blob.NewS3Store(ctx, cfg)
	if err != nil {
		return fmt.Errorf("blob store: %w", err)
	}

	batcher := upload.NewBatcher(store, uploadBatchSize, uploadKeyPrefix)
	results := batcher.Run(ctx, records, localRoot)

	photos := upload.Assemble(records, results)
	if len(photos) == 0 {
		return fmt.Errorf("no photo had a successful upload; manifest not written")
	}

	if err := manifest.WriteJSON(photos, uploadManifest); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	dropped := len(records) - len(photos)
	if dropped > 0 {
		log.Warn("photos dropped from manifest", "dropped", dropped)
	}

	fmt.Println()
	fmt.Printf("  Photos:   %d of %d\n", len(photos), len(records))
	fmt.Printf("  Manifest: %s\n", uploadManifest)
	fmt.Println()

	return nil
}
