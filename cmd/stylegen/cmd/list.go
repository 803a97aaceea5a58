package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/codr1/personafolio/internal/models"
	"github.com/codr1/personafolio/internal/theme"
)

type listEntry struct {
	ID         models.PersonaID   `json:"id"`
	Name       string             `json:"name"`
	Dark       bool               `json:"dark"`
	PrimaryHSL models.HSL         `json:"primaryHsl"`
	Tokens     theme.DesignTokens `json:"tokens"`
}

func newListCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List personas with their derived design tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, _, err := newEngine()
			if err != nil {
				return err
			}

			entries := make([]listEntry, 0, len(catalog.IDs()))
			for _, config := range catalog.All() {
				primary, err := models.HexToRGB(config.PrimaryColor)
				if err != nil {
					return fmt.Errorf("%s primary color: %w", config.ID, err)
				}
				entries = append(entries, listEntry{
					ID:         config.ID,
					Name:       config.Name,
					Dark:       theme.IsDark(config),
					PrimaryHSL: models.RGBToHSL(primary),
					Tokens:     theme.DeriveTokens(config),
				})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(entries)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPALETTE\tPRIMARY HSL\tSPACING\tRADIUS")
			for _, entry := range entries {
				palette := "light"
				if entry.Dark {
					palette = "dark"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%.0f, %.0f%%, %.0f%%\t%dpx\t%dpx\n",
					entry.ID, entry.Name, palette,
					entry.PrimaryHSL.H, entry.PrimaryHSL.S, entry.PrimaryHSL.L,
					entry.Tokens.SpacingPx, entry.Tokens.RadiusPx)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}
