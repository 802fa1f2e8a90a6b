package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rogerwa11/portfolio/internal/content"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate the content payload and print it as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := contentPath
		if path == "" {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path = cfg.App.ContentPath
		}

		c, err := content.Load(path)
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("encode content: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
