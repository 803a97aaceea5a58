package models

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}

	all := catalog.All()
	if len(all) != 6 {
		t.Fatalf("catalog size = %d, want 6", len(all))
	}
	for i, id := range catalog.IDs() {
		if all[i].ID != id {
			t.Fatalf("All()[%d].ID = %q, want %q", i, all[i].ID, id)
		}
		if err := all[i].Validate(); err != nil {
			t.Fatalf("persona %q failed validation: %v", id, err)
		}
	}

	developer, err := catalog.Resolve(PersonaDeveloper)
	if err != nil {
		t.Fatalf("Resolve(developer) error = %v", err)
	}
	if developer.PrimaryColor != "#00D4FF" {
		t.Fatalf("developer primary = %q, want #00D4FF", developer.PrimaryColor)
	}
	if developer.Name != "Developer" || developer.Complexity != ComplexitySimple {
		t.Fatalf("unexpected developer config: %+v", developer)
	}

	designer, err := catalog.Resolve(PersonaDesigner)
	if err != nil {
		t.Fatalf("Resolve(designer) error = %v", err)
	}
	if designer.PrimaryColor != "#FF6B35" || designer.Complexity != ComplexityComplex {
		t.Fatalf("unexpected designer config: %+v", designer)
	}
}

func TestCatalogResolveUnknown(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() error = %v", err)
	}

	_, err = catalog.Resolve("nonexistent")
	if err == nil {
		t.Fatalf("Resolve(nonexistent) expected error")
	}
	if !errors.Is(err, ErrUnknownPersona) {
		t.Fatalf("Resolve(nonexistent) error = %v, want ErrUnknownPersona", err)
	}
	var unknown *UnknownPersonaError
	if !errors.As(err, &unknown) || unknown.ID != "nonexistent" {
		t.Fatalf("Resolve(nonexistent) error = %#v, want *UnknownPersonaError", err)
	}
}

func TestParseCatalogRejectsInvalidInput(t *testing.T) {
	valid := func(id PersonaID, name string) string {
		return "  - id: " + string(id) + "\n" +
			"    name: " + name + "\n" +
			"    primary_color: \"#00D4FF\"\n" +
			"    secondary_color: \"#1A1D3A\"\n" +
			"    accent_color: \"#7C3AED\"\n" +
			"    complexity: simple\n"
	}
	allExcept := func(skip PersonaID) string {
		var b strings.Builder
		b.WriteString("personas:\n")
		for _, id := range AllPersonaIDs() {
			if id == skip {
				continue
			}
			b.WriteString(valid(id, strings.ToUpper(string(id[:1]))+string(id[1:])))
		}
		return b.String()
	}

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing_persona",
			input:   allExcept(PersonaStudent),
			wantErr: `missing persona "student"`,
		},
		{
			name:    "duplicate_persona",
			input:   allExcept("") + valid(PersonaDeveloper, "Developer"),
			wantErr: `duplicate persona "developer"`,
		},
		{
			name:    "unknown_persona",
			input:   allExcept("") + valid("astronaut", "Astronaut"),
			wantErr: "unknown persona",
		},
		{
			name:    "name_mismatch",
			input:   allExcept(PersonaManager) + valid(PersonaManager, "Boss"),
			wantErr: "does not match persona id",
		},
		{
			name:    "bad_color",
			input:   strings.Replace(allExcept(""), "#7C3AED", "purple", 1),
			wantErr: "accent_color must be a 6-digit hex color",
		},
		{
			name:    "bad_complexity",
			input:   strings.Replace(allExcept(""), "complexity: simple", "complexity: baroque", 1),
			wantErr: "complexity",
		},
		{
			name:    "unknown_field",
			input:   strings.Replace(allExcept(""), "complexity: simple", "complexity: simple\n    flavor: mint", 1),
			wantErr: "parse persona catalog",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseCatalog(strings.NewReader(test.input))
			if err == nil {
				t.Fatalf("ParseCatalog() expected error containing %q", test.wantErr)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Fatalf("ParseCatalog() error = %v, want %q", err, test.wantErr)
			}
		})
	}

	if _, err := ParseCatalog(strings.NewReader(allExcept(""))); err != nil {
		t.Fatalf("ParseCatalog(valid) error = %v", err)
	}
}

func TestParsePersonaID(t *testing.T) {
	tests := []struct {
		raw     string
		want    PersonaID
		wantErr bool
	}{
		{raw: "developer", want: PersonaDeveloper},
		{raw: " Designer ", want: PersonaDesigner},
		{raw: "STUDENT", want: PersonaStudent},
		{raw: "nonexistent", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, test := range tests {
		got, err := ParsePersonaID(test.raw)
		if test.wantErr {
			if !errors.Is(err, ErrUnknownPersona) {
				t.Fatalf("ParsePersonaID(%q) error = %v, want ErrUnknownPersona", test.raw, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePersonaID(%q) error = %v", test.raw, err)
		}
		if got != test.want {
			t.Fatalf("ParsePersonaID(%q) = %q, want %q", test.raw, got, test.want)
		}
	}
}
