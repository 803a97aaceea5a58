package theme

import (
	"testing"

	"github.com/codr1/personafolio/internal/models"
)

func TestDeriveTokensPalette(t *testing.T) {
	catalog, err := models.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}

	wantBackground := map[models.PersonaID]string{
		models.PersonaDeveloper:    "#0F1419",
		models.PersonaEntrepreneur: "#0F1419",
		models.PersonaDesigner:     "#FFFFFF",
		models.PersonaManager:      "#FFFFFF",
		models.PersonaCreative:     "#FFFFFF",
		models.PersonaStudent:      "#FFFFFF",
	}

	for _, config := range catalog.All() {
		t.Run(string(config.ID), func(t *testing.T) {
			tokens := DeriveTokens(config)
			if tokens.BackgroundColor != wantBackground[config.ID] {
				t.Fatalf("background = %q, want %q", tokens.BackgroundColor, wantBackground[config.ID])
			}
		})
	}
}

func TestDeriveTokensDarkBranchIgnoresColorScheme(t *testing.T) {
	config := models.PersonaConfig{Name: "DEVELOPER", ColorScheme: "light"}
	tokens := DeriveTokens(config)
	want := DesignTokens{
		TextColor:       "#FFFFFF",
		BackgroundColor: "#0F1419",
		SurfaceColor:    "#1A1D3A",
		BorderColor:     "#3A3F66",
		MutedTextColor:  "#B3B8DB",
		SpacingPx:       16,
		RadiusPx:        12,
		ShadowColor:     "rgba(0, 0, 0, 0.4)",
	}
	if tokens != want {
		t.Fatalf("DeriveTokens() = %+v, want %+v", tokens, want)
	}

	config = models.PersonaConfig{Name: "Creative", ColorScheme: "dark", Complexity: models.ComplexitySimple}
	tokens = DeriveTokens(config)
	want = DesignTokens{
		TextColor:       "#1A1A1A",
		BackgroundColor: "#FFFFFF",
		SurfaceColor:    "#F8F9FA",
		BorderColor:     "#E5E7EB",
		MutedTextColor:  "#6B7280",
		SpacingPx:       16,
		RadiusPx:        8,
		ShadowColor:     "rgba(0, 0, 0, 0.1)",
	}
	if tokens != want {
		t.Fatalf("DeriveTokens() = %+v, want %+v", tokens, want)
	}
}

func TestDeriveTokensComplexity(t *testing.T) {
	tests := []struct {
		complexity  models.Complexity
		wantSpacing int
		wantRadius  int
	}{
		{complexity: models.ComplexitySimple, wantSpacing: 16, wantRadius: 8},
		{complexity: models.ComplexityModerate, wantSpacing: 20, wantRadius: 12},
		{complexity: models.ComplexityComplex, wantSpacing: 24, wantRadius: 16},
		{complexity: models.ComplexityDetailed, wantSpacing: 28, wantRadius: 20},
		{complexity: "", wantSpacing: 16, wantRadius: 12},
		{complexity: "baroque", wantSpacing: 16, wantRadius: 12},
	}

	for _, test := range tests {
		tokens := DeriveTokens(models.PersonaConfig{Name: "Manager", Complexity: test.complexity})
		if tokens.SpacingPx != test.wantSpacing || tokens.RadiusPx != test.wantRadius {
			t.Fatalf("complexity %q: spacing/radius = %d/%d, want %d/%d",
				test.complexity, tokens.SpacingPx, tokens.RadiusPx, test.wantSpacing, test.wantRadius)
		}
	}
}
