// Package theme turns a persona config into a generated stylesheet.
package theme

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/codr1/personafolio/internal/models"
)

// StylesheetID is the stable identity of the injected generated stylesheet.
const StylesheetID = "persona-generated-styles"

// Stylesheet is a generated stylesheet plus the persona it was built for.
type Stylesheet struct {
	Persona   models.PersonaID `json:"persona"`
	Name      string           `json:"name"`
	BodyClass string           `json:"bodyClass"`
	CSS       string           `json:"css"`
}

// Engine generates stylesheets from a persona catalog.
type Engine struct {
	catalog *models.Catalog
	logger  zerolog.Logger
}

func NewEngine(catalog *models.Catalog, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		logger:  logger.With().Str("component", "theme_engine").Logger(),
	}
}

// ResolveConfig fails with *models.UnknownPersonaError for unknown ids.
func (e *Engine) ResolveConfig(id models.PersonaID) (models.PersonaConfig, error) {
	return e.catalog.Resolve(id)
}

// Generate is pure and deterministic for a given catalog.
func (e *Engine) Generate(id models.PersonaID) (Stylesheet, error) {
	config, err := e.ResolveConfig(id)
	if err != nil {
		return Stylesheet{}, err
	}

	e.logger.Debug().
		Str("persona", string(id)).
		Str("prompt", ConstructPrompt(config)).
		Msg("Generating persona stylesheet")

	css := GenerateStylesheet(config)
	if err := ValidateStylesheet(css); err != nil {
		return Stylesheet{}, fmt.Errorf("persona %s: %w", id, err)
	}

	return Stylesheet{
		Persona:   id,
		Name:      config.Name,
		BodyClass: BodyClass(config),
		CSS:       css,
	}, nil
}

// GenerateStylesheet joins the base block and persona rules with a blank line.
func GenerateStylesheet(config models.PersonaConfig) string {
	tokens := DeriveTokens(config)
	return RenderBaseBlock(config, tokens) + "\n\n" + RenderPersonaRules(config)
}

// BodyClass returns the theme-<name> class applied to the document body.
func BodyClass(config models.PersonaConfig) string {
	return "theme-" + cases.Lower(language.Und).String(config.Name)
}

