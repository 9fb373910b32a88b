package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gallery/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML after applying the search order:
--config, ~/.gallery/configs/gallery.yaml, ./configs/gallery.yaml, built-in.

Examples:
  gallery config
  gallery config --defaults > ~/.gallery/configs/gallery.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		fmt.Fprint(cmd.OutOrStdout(), string(config.GetDefaultYAML()))
		return nil
	}

	cfg, err := config.LoadGallery(flagConfig)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
