// Package cmd implements the stylegen CLI, which renders persona
// stylesheets and prompts without starting the server.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/codr1/personafolio/internal/models"
	"github.com/codr1/personafolio/internal/theme"
)

type options struct {
	logLevel string
	verbose  bool
}

// NewRootCommand builds the stylegen command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "stylegen",
		Short: "Render persona stylesheets offline",
		Long: `stylegen renders the stylesheet, design tokens and generation prompt
for each persona in the embedded catalog.

Examples:
  # Print every persona stylesheet
  stylegen render

  # Write one file per persona
  stylegen render --out build/css

  # Show the prompt for a persona
  stylegen prompt designer`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initLogging(opts)
		},
	}

	addGlobalFlags(root.PersistentFlags(), opts)

	root.AddCommand(
		newRenderCommand(),
		newPromptCommand(),
		newListCommand(),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	if err := NewRootCommand().Execute(); err != nil {
		return fmt.Errorf("executing root command: %w", err)
	}
	return nil
}

func addGlobalFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "shorthand for --log-level=debug")
}

func initLogging(opts *options) error {
	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
	}
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	return nil
}

func newEngine() (*models.Catalog, *theme.Engine, error) {
	catalog, err := models.DefaultCatalog()
	if err != nil {
		return nil, nil, fmt.Errorf("load persona catalog: %w", err)
	}
	return catalog, theme.NewEngine(catalog, log.Logger), nil
}

// resolveArgs maps persona arguments to ids, defaulting to the whole catalog.
func resolveArgs(catalog *models.Catalog, args []string) ([]models.PersonaID, error) {
	if len(args) == 0 {
		return catalog.IDs(), nil
	}
	ids := make([]models.PersonaID, 0, len(args))
	for _, arg := range args {
		id, err := models.ParsePersonaID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
