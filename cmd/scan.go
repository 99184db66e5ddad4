package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kastheco/iconforge/library"
	"github.com/kastheco/iconforge/svg"
)

// NewScanCmd returns the `iconforge scan` cobra command: it lists every icon
// in the library with its color inventory.
func NewScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "list library icons and their colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			icons, err := library.Scan(cfg.Library)
			if err != nil {
				return err
			}
			for _, icon := range icons {
				markup, err := library.Read(icon)
				if err != nil {
					return err
				}
				entries := svg.Extract(markup)
				parts := make([]string, 0, len(entries))
				for _, e := range entries {
					part := fmt.Sprintf("%s(%s", e.Color, e.Kind)
					if e.Count > 1 {
						part += fmt.Sprintf(" x%d", e.Count)
					}
					parts = append(parts, part+")")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", icon.Name, strings.Join(parts, " "))
			}
			return nil
		},
	}
}
