package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRenderCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "render [persona...]",
		Short: "Render persona stylesheets",
		Long: `Render the validated stylesheet for each named persona, or for every
persona when none are given. Output goes to stdout unless --out is set,
in which case one <persona>.css file is written per persona.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, engine, err := newEngine()
			if err != nil {
				return err
			}
			ids, err := resolveArgs(catalog, args)
			if err != nil {
				return err
			}

			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("create output directory: %w", err)
				}
			}

			out := cmd.OutOrStdout()
			for i, id := range ids {
				sheet, err := engine.Generate(id)
				if err != nil {
					return fmt.Errorf("render %s: %w", id, err)
				}

				if outDir == "" {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "/* %s (body class %s) */\n%s\n", sheet.Name, sheet.BodyClass, sheet.CSS)
					continue
				}

				path := filepath.Join(outDir, string(id)+".css")
				if err := os.WriteFile(path, []byte(sheet.CSS+"\n"), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				log.Info().Str("persona", string(id)).Str("path", path).Msg("Wrote stylesheet")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory to write <persona>.css files into")
	return cmd
}
