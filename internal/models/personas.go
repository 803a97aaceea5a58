package models

import (
	"fmt"
	"strings"
)

// PersonaID identifies one of the fixed visitor archetypes.
type PersonaID string

const (
	PersonaDeveloper    PersonaID = "developer"
	PersonaDesigner     PersonaID = "designer"
	PersonaManager      PersonaID = "manager"
	PersonaEntrepreneur PersonaID = "entrepreneur"
	PersonaCreative     PersonaID = "creative"
	PersonaStudent      PersonaID = "student"
)

// personaOrder is the display order of the closed persona set.
var personaOrder = []PersonaID{
	PersonaDeveloper,
	PersonaDesigner,
	PersonaManager,
	PersonaEntrepreneur,
	PersonaCreative,
	PersonaStudent,
}

// AllPersonaIDs returns every persona id in display order.
func AllPersonaIDs() []PersonaID {
	ids := make([]PersonaID, len(personaOrder))
	copy(ids, personaOrder)
	return ids
}

// Valid reports whether id belongs to the closed persona set.
func (id PersonaID) Valid() bool {
	for _, known := range personaOrder {
		if id == known {
			return true
		}
	}
	return false
}

func (id PersonaID) String() string {
	return string(id)
}

// ParsePersonaID normalizes raw and rejects anything outside the persona set.
func ParsePersonaID(raw string) (PersonaID, error) {
	id := PersonaID(strings.ToLower(strings.TrimSpace(raw)))
	if !id.Valid() {
		return "", &UnknownPersonaError{ID: raw}
	}
	return id, nil
}

// Complexity scales spacing and corner radius.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
	ComplexityDetailed Complexity = "detailed"
)

func (c Complexity) Valid() bool {
	switch c {
	case ComplexitySimple, ComplexityModerate, ComplexityComplex, ComplexityDetailed:
		return true
	}
	return false
}

// PersonaConfig is the immutable description of a persona theme.
// Characteristics, ColorScheme and Mood are descriptive only.
type PersonaConfig struct {
	ID              PersonaID  `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name"`
	Characteristics string     `json:"characteristics" yaml:"characteristics"`
	ColorScheme     string     `json:"colorScheme" yaml:"color_scheme"`
	PrimaryColor    string     `json:"primaryColor" yaml:"primary_color"`
	SecondaryColor  string     `json:"secondaryColor" yaml:"secondary_color"`
	AccentColor     string     `json:"accentColor" yaml:"accent_color"`
	Mood            string     `json:"mood" yaml:"mood"`
	Complexity      Complexity `json:"complexity" yaml:"complexity"`
}

func (p PersonaConfig) Validate() error {
	if !p.ID.Valid() {
		return &UnknownPersonaError{ID: string(p.ID)}
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if name != p.Name {
		return fmt.Errorf("name must not have leading or trailing whitespace")
	}
	if !strings.EqualFold(name, string(p.ID)) {
		return fmt.Errorf("name %q does not match persona id %q", name, p.ID)
	}
	if !p.Complexity.Valid() {
		return fmt.Errorf("complexity %q must be one of simple, moderate, complex, detailed", p.Complexity)
	}

	colorFields := []struct {
		name  string
		value string
	}{
		{"primary_color", p.PrimaryColor},
		{"secondary_color", p.SecondaryColor},
		{"accent_color", p.AccentColor},
	}
	for _, field := range colorFields {
		if !hexColorRegex.MatchString(field.value) {
			return fmt.Errorf("%s must be a 6-digit hex color like #AABBCC", field.name)
		}
		if err := validateTextContrast(field.name, field.value); err != nil {
			return err
		}
	}

	return nil
}
