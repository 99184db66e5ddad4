package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kastheco/iconforge/config"
)

// NewRootCmd returns the root cobra command with all subcommands registered.
// Used in tests and for command discovery.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "iconforge",
		Short: "iconforge - Manage and recolor SVG icon libraries",
	}
	root.PersistentFlags().String("config", "iconforge.toml", "path to the project config file")

	root.AddCommand(NewScanCmd())
	root.AddCommand(NewApplyCmd())
	root.AddCommand(NewBundleCmd())
	root.AddCommand(NewEditCmd())
	root.AddCommand(NewServeCmd())
	return root
}

// loadConfig reads the project config named by the --config persistent flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// libraryName is the store key for a library directory: its base name.
func libraryName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Base(dir)
	}
	return filepath.Base(abs)
}
