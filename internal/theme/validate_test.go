package theme

import (
	"errors"
	"strings"
	"testing"

	"github.com/codr1/personafolio/internal/models"
)

func TestValidateStylesheet(t *testing.T) {
	base := RenderBaseBlock(models.PersonaConfig{Name: "Student", PrimaryColor: "#10B981"}, DeriveTokens(models.PersonaConfig{Name: "Student"}))

	tests := []struct {
		name    string
		css     string
		wantErr string
	}{
		{name: "base_only", css: base},
		{name: "with_rules", css: base + "\n\n" + studentRules},
		{name: "unclosed_block", css: base + "\n.tech-tag {\n  color: white;\n", wantErr: "unclosed block"},
		{name: "stray_close", css: base + "\n}\n", wantErr: "unexpected '}'"},
		{name: "missing_property", css: strings.Replace(base, "  --persona-shadow: rgba(0, 0, 0, 0.1);\n", "", 1), wantErr: "10 custom properties"},
		{name: "reordered_property", css: strings.Replace(base, "--persona-bg:", "--persona-background:", 1), wantErr: "custom property 3"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateStylesheet(test.css)
			if test.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateStylesheet() error = %v", err)
				}
				return
			}
			if !errors.Is(err, ErrGenerationFailure) {
				t.Fatalf("ValidateStylesheet() error = %v, want ErrGenerationFailure", err)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Fatalf("ValidateStylesheet() error = %v, want %q", err, test.wantErr)
			}
		})
	}
}
