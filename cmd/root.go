package cmd

import (
	"github.com/spf13/cobra"
)

var version = "dev"

var contentPath string

var rootCmd = &cobra.Command{
	Use:     "portfolio",
	Short:   "Personal portfolio server",
	Long:    `Serves the single-page portfolio: hero, project showcase, skills and contact, with a persisted dark/light theme.`,
	Version: version,
	RunE:    runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "",
		"path to a YAML content payload (default: compiled-in payload, or CONTENT_PATH)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
	addServeFlags(rootCmd)
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func Execute() error {
	return rootCmd.Execute()
}
