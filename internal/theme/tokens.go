package theme

import (
	"strings"

	"github.com/codr1/personafolio/internal/models"
)

const (
	defaultSpacingPx = 16
	defaultRadiusPx  = 12
)

var spacingByComplexity = map[models.Complexity]int{
	models.ComplexitySimple:   16,
	models.ComplexityModerate: 20,
	models.ComplexityComplex:  24,
	models.ComplexityDetailed: 28,
}

var radiusByComplexity = map[models.Complexity]int{
	models.ComplexitySimple:   8,
	models.ComplexityModerate: 12,
	models.ComplexityComplex:  16,
	models.ComplexityDetailed: 20,
}

// darkPersonaNames selects the dark palette by persona name, not by color scheme.
var darkPersonaNames = []string{"developer", "entrepreneur"}

// DesignTokens are the visual primitives derived from a persona config.
type DesignTokens struct {
	TextColor       string `json:"textColor"`
	BackgroundColor string `json:"backgroundColor"`
	SurfaceColor    string `json:"surfaceColor"`
	BorderColor     string `json:"borderColor"`
	MutedTextColor  string `json:"mutedTextColor"`
	SpacingPx       int    `json:"spacingPx"`
	RadiusPx        int    `json:"radiusPx"`
	ShadowColor     string `json:"shadowColor"`
}

var darkTokens = DesignTokens{
	TextColor:       "#FFFFFF",
	BackgroundColor: "#0F1419",
	SurfaceColor:    "#1A1D3A",
	BorderColor:     "#3A3F66",
	MutedTextColor:  "#B3B8DB",
	ShadowColor:     "rgba(0, 0, 0, 0.4)",
}

var lightTokens = DesignTokens{
	TextColor:       "#1A1A1A",
	BackgroundColor: "#FFFFFF",
	SurfaceColor:    "#F8F9FA",
	BorderColor:     "#E5E7EB",
	MutedTextColor:  "#6B7280",
	ShadowColor:     "rgba(0, 0, 0, 0.1)",
}

// IsDark reports whether config uses the dark palette.
func IsDark(config models.PersonaConfig) bool {
	for _, name := range darkPersonaNames {
		if strings.EqualFold(config.Name, name) {
			return true
		}
	}
	return false
}

// DeriveTokens never fails; unknown complexity values fall back to defaults.
func DeriveTokens(config models.PersonaConfig) DesignTokens {
	tokens := lightTokens
	if IsDark(config) {
		tokens = darkTokens
	}

	tokens.SpacingPx = defaultSpacingPx
	if spacing, ok := spacingByComplexity[config.Complexity]; ok {
		tokens.SpacingPx = spacing
	}
	tokens.RadiusPx = defaultRadiusPx
	if radius, ok := radiusByComplexity[config.Complexity]; ok {
		tokens.RadiusPx = radius
	}
	return tokens
}
