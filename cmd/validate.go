package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hcho112/the-wedding/internal/manifest"
	"github.com/hcho112/the-wedding/internal/placeholder"
	"github.com/hcho112/the-wedding/internal/variant"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a published gallery manifest",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	var photos []manifest.Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		return fmt.Errorf("parse manifest: %w", err)
	}

	errors := validateManifest(photos)

	if len(errors) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d photos\n", len(photos))
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateManifest(photos []manifest.Photo) []string {
	var errs []string

	known := make(map[string]bool, len(variant.Names))
	for _, name := range variant.Names {
		known[name] = true
	}

	seenIDs := map[string]bool{}
	for i, p := range photos {
		label := p.ID
		if label == "" {
			label = fmt.Sprintf("entry[%d]", i)
			errs = append(errs, fmt.Sprintf("%s: missing id", label))
		}
		if seenIDs[p.ID] && p.ID != "" {
			errs = append(errs, fmt.Sprintf("%s: duplicate id", label))
		}
		seenIDs[p.ID] = true

		if p.Category == "" {
			errs = append(errs, fmt.Sprintf("%s: missing category", label))
		}
		if p.TimeOfDay == "" {
			errs = append(errs, fmt.Sprintf("%s: missing timeOfDay", label))
		}
		if !strings.HasPrefix(p.BlurDataURL, "data:image/") {
			errs = append(errs, fmt.Sprintf("%s: blurDataUrl is not an inline image (want %q prefix)", label, placeholder.Prefix))
		}
		if p.URL == "" {
			errs = append(errs, fmt.Sprintf("%s: missing url", label))
		}
		if p.Width <= 0 || p.Height <= 0 {
			errs = append(errs, fmt.Sprintf("%s: invalid dimensions %dx%d", label, p.Width, p.Height))
		}

		if len(p.Variants) == 0 {
			errs = append(errs, fmt.Sprintf("%s: no variants", label))
		}
		for name, v := range p.Variants {
			if !known[name] {
				errs = append(errs, fmt.Sprintf("%s: unknown variant %q", label, name))
			}
			if v.URL == "" {
				errs = append(errs, fmt.Sprintf("%s: variant %q has empty url", label, name))
			}
			if v.Width <= 0 || v.Height <= 0 {
				errs = append(errs, fmt.Sprintf("%s: variant %q has invalid dimensions %dx%d", label, name, v.Width, v.Height))
			}
		}
	}

	return errs
}
