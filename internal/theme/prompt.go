package theme

import (
	"fmt"
	"strings"

	"github.com/codr1/personafolio/internal/models"
)

// promptPreamble marks the start of a new model sequence.
const promptPreamble = "<eos><bos>"

// ConstructPrompt renders the generation request a style model would receive
// for config. Nothing consumes it beyond logging and the stylegen CLI.
func ConstructPrompt(config models.PersonaConfig) string {
	var b strings.Builder
	b.WriteString(promptPreamble)
	fmt.Fprintf(&b, "System: Generate CSS for a %s portfolio theme.\n\n", strings.ToLower(config.Name))
	fmt.Fprintf(&b, "Persona: %s\n", config.Name)
	fmt.Fprintf(&b, "Characteristics: %s\n", config.Characteristics)
	fmt.Fprintf(&b, "Color Scheme: %s\n", config.ColorScheme)
	fmt.Fprintf(&b, "Primary Color: %s\n", config.PrimaryColor)
	fmt.Fprintf(&b, "Mood: %s\n", config.Mood)
	fmt.Fprintf(&b, "Complexity: %s\n\n", config.Complexity)
	b.WriteString("Generate modern, responsive CSS that transforms a portfolio website to match this persona.\n")
	b.WriteString("Include:\n")
	b.WriteString("- CSS custom properties for colors and styling\n")
	b.WriteString("- Professional styling that reflects the persona's characteristics\n")
	b.WriteString("- Smooth transitions and modern visual effects\n")
	b.WriteString("- Responsive design considerations\n\n")
	b.WriteString("Output ONLY valid CSS code. No explanations or comments.\n")
	b.WriteString("FOLLOW ONLY THESE REQUIREMENTS.")
	return b.String()
}
