package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kastheco/iconforge/library"
	"github.com/kastheco/iconforge/ui"
)

// NewEditCmd returns the `iconforge edit` cobra command: the interactive
// icon editing surface.
func NewEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "open the interactive icon editor",
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

			icons, err := library.Scan(cfg.Library)
			if err != nil {
				return err
			}
			if len(icons) == 0 {
				return fmt.Errorf("no SVG icons found in %s", cfg.Library)
			}

			model := ui.New(store, libraryName(cfg.Library), icons, cfg.Filter)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
