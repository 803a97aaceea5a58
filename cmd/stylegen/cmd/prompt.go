package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codr1/personafolio/internal/models"
	"github.com/codr1/personafolio/internal/theme"
)

func newPromptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <persona>",
		Short: "Print the generation prompt for a persona",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, engine, err := newEngine()
			if err != nil {
				return err
			}
			id, err := models.ParsePersonaID(args[0])
			if err != nil {
				return err
			}
			config, err := engine.ResolveConfig(id)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), theme.ConstructPrompt(config))
			return err
		},
	}
}
