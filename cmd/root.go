package cmd

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wedding",
	Short: "Static-manifest photo gallery pipeline",
	Long: `wedding turns a folder tree of raw wedding photos into responsive
web variants with inline blur placeholders, publishes them to a blob
store, and assembles the static manifest the gallery pages read.

Folder layout is the schema: <category>/<timeOfDay>/photo.jpg`,
	Version: version,
	PersistentPreRun: func(*cobra.Command, []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"wedding %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}
