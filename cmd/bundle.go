package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kastheco/iconforge/library"
)

// NewBundleCmd returns the `iconforge bundle` cobra command: it writes each
// manifest icon to the output directory with its chosen variant applied.
// Consumers of the output never see profiles or filters, only final markup.
func NewBundleCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "export manifest icons with their variants resolved",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := cfg.OpenStore()
			if err != nil {
				return err
			}
			defer store.Close()

			manifest, err := library.LoadManifest(cfg.Library)
			if err != nil {
				return err
			}
			if len(manifest.Icons) == 0 {
				return fmt.Errorf("no icons in %s/bundle.yaml", cfg.Library)
			}

			icons, err := library.Scan(cfg.Library)
			if err != nil {
				return err
			}
			byName := make(map[string]library.Icon, len(icons))
			for _, icon := range icons {
				byName[icon.Name] = icon
			}

			if err := os.MkdirAll(out, 0o755); err != nil {
				return err
			}
			lib := libraryName(cfg.Library)
			for _, entry := range manifest.Icons {
				icon, ok := byName[entry.Icon]
				if !ok {
					return fmt.Errorf("manifest icon not in library: %s", entry.Icon)
				}
				markup, err := library.Read(icon)
				if err != nil {
					return err
				}
				final := library.Finalize(store, lib, entry.Icon, markup, entry.Variant)
				dst := filepath.Join(out, entry.Icon+".svg")
				if err := os.WriteFile(dst, []byte(final), 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", dst)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "dist", "output directory for finalized icons")
	return cmd
}
