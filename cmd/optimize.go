package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hcho112/the-wedding/internal/pipeline"
)

var (
	optimizeOutDir    string
	optimizeQuality   int
	optimizeBatchSize int
	optimizeMetadata  string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <source_dir>",
	Short: "Generate responsive variants and blur placeholders",
	Long: `Walks the source tree for raster images (png, jpg, jpeg, webp, gif,
bmp, tiff), generates mobile/tablet/desktop/full variants without ever
upscaling, synthesizes an inline blur placeholder per photo, and writes
the intermediate metadata artifact the upload step consumes.`,
	Args: cobra.ExactArgs(1),
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeOutDir, "out", "o", "./optimized", "output directory")
	optimizeCmd.Flags().IntVarP(&optimizeQuality, "quality", "q", 100, "encoding quality 1-100")
	optimizeCmd.Flags().IntVar(&optimizeBatchSize, "batch-size", pipeline.DefaultBatchSize, "photos processed per batch")
	optimizeCmd.Flags().StringVar(&optimizeMetadata, "metadata", pipeline.DefaultMetadataFileName, "metadata artifact path")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, args []string) error {
	absInput, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve source path: %w", err)
	}
	absOutput, err := filepath.Abs(optimizeOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	report, err := pipeline.Run(pipeline.Config{
		InputDir:     absInput,
		OutputDir:    absOutput,
		Quality:      optimizeQuality,
		BatchSize:    optimizeBatchSize,
		MetadataPath: optimizeMetadata,
	})
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Photos:      %d\n", report.Photos)
	if report.Failed > 0 {
		fmt.Printf("  Failed:      %d (skipped)\n", report.Failed)
	}
	fmt.Printf("  Variants:    %d\n", report.Variants)
	fmt.Printf("  Output size: %s\n", formatBytes(report.OutputBytes))
	fmt.Printf("  Time:        %s\n", report.Elapsed.Round(time.Millisecond))
	fmt.Printf("  Metadata:    %s\n", optimizeMetadata)
	fmt.Println()

	return nil
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
