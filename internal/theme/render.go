package theme

import (
	"fmt"
	"strings"

	"github.com/codr1/personafolio/internal/models"
)

// CustomPropertyNames lists the properties bound by RenderBaseBlock, in order.
var CustomPropertyNames = []string{
	"--persona-primary",
	"--persona-secondary",
	"--persona-accent",
	"--persona-bg",
	"--persona-surface",
	"--persona-text",
	"--persona-text-muted",
	"--persona-border",
	"--persona-spacing",
	"--persona-radius",
	"--persona-shadow",
}

// RenderBaseBlock binds the persona custom properties on :root.
func RenderBaseBlock(config models.PersonaConfig, tokens DesignTokens) string {
	values := []string{
		config.PrimaryColor,
		config.SecondaryColor,
		config.AccentColor,
		tokens.BackgroundColor,
		tokens.SurfaceColor,
		tokens.TextColor,
		tokens.MutedTextColor,
		tokens.BorderColor,
		fmt.Sprintf("%dpx", tokens.SpacingPx),
		fmt.Sprintf("%dpx", tokens.RadiusPx),
		tokens.ShadowColor,
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  /* %s Persona Variables */\n", config.Name)
	for i, name := range CustomPropertyNames {
		fmt.Fprintf(&b, "  %s: %s;\n", name, values[i])
	}
	b.WriteString("}")
	return b.String()
}

// RenderPersonaRules returns the rule block for the persona named by config.Name.
// Names outside the persona set yield "".
func RenderPersonaRules(config models.PersonaConfig) string {
	switch models.PersonaID(strings.ToLower(strings.TrimSpace(config.Name))) {
	case models.PersonaDeveloper:
		return developerRules
	case models.PersonaDesigner:
		return designerRules
	case models.PersonaManager:
		return managerRules
	case models.PersonaEntrepreneur:
		return entrepreneurRules
	case models.PersonaCreative:
		return creativeRules
	case models.PersonaStudent:
		return studentRules
	default:
		return ""
	}
}
