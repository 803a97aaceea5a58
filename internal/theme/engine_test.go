package theme

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/codr1/personafolio/internal/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	catalog, err := models.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}
	return NewEngine(catalog, zerolog.Nop())
}

func TestGenerateAllPersonas(t *testing.T) {
	engine := newTestEngine(t)

	ruleHeaders := map[models.PersonaID]string{
		models.PersonaDeveloper:    "/* Developer Theme Enhancements */",
		models.PersonaDesigner:     "/* Designer Theme Enhancements */",
		models.PersonaManager:      "/* Manager Theme Enhancements */",
		models.PersonaEntrepreneur: "/* Entrepreneur Theme Enhancements */",
		models.PersonaCreative:     "/* Creative Theme Enhancements */",
		models.PersonaStudent:      "/* Student Theme Enhancements */",
	}

	for _, id := range models.AllPersonaIDs() {
		t.Run(string(id), func(t *testing.T) {
			first, err := engine.Generate(id)
			if err != nil {
				t.Fatalf("Generate(%q) error = %v", id, err)
			}
			second, err := engine.Generate(id)
			if err != nil {
				t.Fatalf("Generate(%q) second call error = %v", id, err)
			}
			if first.CSS != second.CSS {
				t.Fatalf("Generate(%q) is not deterministic", id)
			}
			if first.CSS == "" {
				t.Fatalf("Generate(%q) returned empty stylesheet", id)
			}
			if got := len(CustomProperties(first.CSS)); got != 11 {
				t.Fatalf("Generate(%q) declared %d custom properties, want 11", id, got)
			}
			if !strings.Contains(first.CSS, "}\n\n"+ruleHeaders[id]) {
				t.Fatalf("Generate(%q) missing persona rule block separated by a blank line", id)
			}
			if first.BodyClass != "theme-"+string(id) {
				t.Fatalf("BodyClass = %q, want theme-%s", first.BodyClass, id)
			}
		})
	}
}

func TestGenerateDesignerBaseBlock(t *testing.T) {
	engine := newTestEngine(t)

	sheet, err := engine.Generate(models.PersonaDesigner)
	if err != nil {
		t.Fatalf("Generate(designer) error = %v", err)
	}

	want := ":root {\n" +
		"  /* Designer Persona Variables */\n" +
		"  --persona-primary: #FF6B35;\n" +
		"  --persona-secondary: #FFE066;\n" +
		"  --persona-accent: #FF3366;\n" +
		"  --persona-bg: #FFFFFF;\n" +
		"  --persona-surface: #F8F9FA;\n" +
		"  --persona-text: #1A1A1A;\n" +
		"  --persona-text-muted: #6B7280;\n" +
		"  --persona-border: #E5E7EB;\n" +
		"  --persona-spacing: 24px;\n" +
		"  --persona-radius: 16px;\n" +
		"  --persona-shadow: rgba(0, 0, 0, 0.1);\n" +
		"}\n\n"
	if !strings.HasPrefix(sheet.CSS, want) {
		t.Fatalf("designer stylesheet prefix mismatch:\n%s", sheet.CSS[:len(want)])
	}
}

func TestGenerateUnknownPersona(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Generate("nonexistent")
	if !errors.Is(err, models.ErrUnknownPersona) {
		t.Fatalf("Generate(nonexistent) error = %v, want ErrUnknownPersona", err)
	}
	if errors.Is(err, ErrGenerationFailure) {
		t.Fatalf("unknown persona must not be reported as a generation failure")
	}
}

func TestRenderPersonaRules(t *testing.T) {
	tests := []struct {
		name       string
		personaKey string
		wantPrefix string
	}{
		{name: "exact", personaKey: "Student", wantPrefix: "/* Student Theme Enhancements */"},
		{name: "case_insensitive", personaKey: "eNtRePrEnEuR", wantPrefix: "/* Entrepreneur Theme Enhancements */"},
		{name: "unknown", personaKey: "Astronaut", wantPrefix: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := RenderPersonaRules(models.PersonaConfig{Name: test.personaKey})
			if test.wantPrefix == "" {
				if got != "" {
					t.Fatalf("RenderPersonaRules(%q) = %q, want empty", test.personaKey, got)
				}
				return
			}
			if !strings.HasPrefix(got, test.wantPrefix) {
				t.Fatalf("RenderPersonaRules(%q) prefix = %q", test.personaKey, got[:len(test.wantPrefix)])
			}
		})
	}
}

func TestConstructPrompt(t *testing.T) {
	engine := newTestEngine(t)
	config, err := engine.ResolveConfig(models.PersonaManager)
	if err != nil {
		t.Fatalf("ResolveConfig(manager) error = %v", err)
	}

	prompt := ConstructPrompt(config)
	for _, want := range []string{
		"Generate CSS for a manager portfolio theme.",
		"Persona: Manager",
		"Color Scheme: professional",
		"Primary Color: #2563EB",
		"Complexity: moderate",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if !strings.HasPrefix(prompt, "<eos><bos>System: Generate CSS") {
		t.Fatalf("prompt should open with the sequence markers:\n%s", prompt)
	}
	if !strings.HasSuffix(prompt, "No explanations or comments.\nFOLLOW ONLY THESE REQUIREMENTS.") {
		t.Fatalf("prompt should end with the closing directive:\n%s", prompt)
	}
}
