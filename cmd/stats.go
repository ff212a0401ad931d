package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hcho112/the-wedding/internal/manifest"
	"github.com/hcho112/the-wedding/internal/variant"
)

var statsCmd = &cobra.Command{
	Use:   "stats <manifest_path>",
	Short: "Display statistics for a published manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var photos []manifest.Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	printStats(photos)
	return nil
}

func printStats(photos []manifest.Photo) {
	fmt.Println()
	fmt.Printf("  Total photos:   %d\n", len(photos))

	variantCount := 0
	blurCount := 0
	byCategory := map[string]int{}
	byTime := map[string]int{}
	byVariant := map[string]int{}

	for _, p := range photos {
		variantCount += len(p.Variants)
		if p.BlurDataURL != "" {
			blurCount++
		}
		byCategory[p.Category]++
		byTime[p.TimeOfDay]++
		for name := range p.Variants {
			byVariant[name]++
		}
	}

	fmt.Printf("  Total variants: %d\n", variantCount)
	fmt.Printf("  Blur coverage:  %d / %d\n", blurCount, len(photos))
	fmt.Println()

	fmt.Println("  Category breakdown:")
	var categories []string
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Printf("    %-20s %4d photos\n", c, byCategory[c])
	}
	fmt.Println()

	fmt.Println("  Time-of-day breakdown:")
	var times []string
	for t := range byTime {
		times = append(times, t)
	}
	sort.Strings(times)
	for _, t := range times {
		fmt.Printf("    %-20s %4d photos\n", t, byTime[t])
	}
	fmt.Println()

	fmt.Println("  Variant coverage:")
	for _, name := range variant.Names {
		fmt.Printf("    %-8s %4d / %d\n", name, byVariant[name], len(photos))
	}

	// Photos missing a sized variant deserve a second look: their upload
	// partially failed.
	var warnings []string
	for _, p := range photos {
		if len(p.Variants) < len(variant.Names) {
			warnings = append(warnings, fmt.Sprintf("photo %q has %d of %d variants", p.ID, len(p.Variants), len(variant.Names)))
		}
	}
	if len(warnings) > 0 {
		fmt.Println()
		fmt.Printf("  Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("    ⚠ %s\n", w)
		}
	}
	fmt.Println()
}
