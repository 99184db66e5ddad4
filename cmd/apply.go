package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kastheco/iconforge/color"
	"github.com/kastheco/iconforge/editor"
	"github.com/kastheco/iconforge/library"
)

// NewApplyCmd returns the `iconforge apply` cobra command: the scripting
// entry point for the same filter pipeline the interactive surface uses.
func NewApplyCmd() *cobra.Command {
	var (
		icon       string
		hue        int
		saturation int
		brightness int
		write      bool
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "apply a hue/saturation/brightness filter to an icon",
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
			var target *library.Icon
			for i := range icons {
				if icons[i].Name == icon {
					target = &icons[i]
					break
				}
			}
			if target == nil {
				return fmt.Errorf("icon not found in library: %s", icon)
			}

			markup, err := library.Read(*target)
			if err != nil {
				return err
			}
			session, err := editor.NewSession(store, libraryName(cfg.Library), icon, markup)
			if err != nil {
				return err
			}

			out := session.ApplyFilter(color.Settings{
				Hue:        hue,
				Saturation: saturation,
				Brightness: brightness,
			})

			if write {
				if err := library.Write(*target, out); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			if save {
				return session.Flush()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "icon name to recolor")
	cmd.Flags().IntVar(&hue, "hue", 0, "hue rotation in degrees")
	cmd.Flags().IntVar(&saturation, "saturation", 100, "saturation percentage (0-200)")
	cmd.Flags().IntVar(&brightness, "brightness", 100, "brightness percentage (0-200)")
	cmd.Flags().BoolVar(&write, "write", false, "write the result back to the source file instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "flush the updated color profile to the variant store")
	cmd.MarkFlagRequired("icon")

	return cmd
}
