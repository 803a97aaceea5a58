package models

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/codr1/personafolio/assets"
)

// Catalog holds the persona table. It is built once and never mutated.
type Catalog struct {
	personas map[PersonaID]PersonaConfig
}

type catalogFile struct {
	Personas []PersonaConfig `yaml:"personas"`
}

// NewCatalog validates configs and requires exactly one entry per persona id.
func NewCatalog(configs []PersonaConfig) (*Catalog, error) {
	personas := make(map[PersonaID]PersonaConfig, len(configs))
	for i, config := range configs {
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid persona at index %d: %w", i, err)
		}
		if _, exists := personas[config.ID]; exists {
			return nil, fmt.Errorf("duplicate persona %q", config.ID)
		}
		personas[config.ID] = config
	}
	for _, id := range personaOrder {
		if _, ok := personas[id]; !ok {
			return nil, fmt.Errorf("missing persona %q", id)
		}
	}
	return &Catalog{personas: personas}, nil
}

// ParseCatalog reads a YAML persona catalog.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file catalogFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse persona catalog: %w", err)
	}
	return NewCatalog(file.Personas)
}

// DefaultCatalog parses the embedded assets/personas.yaml.
func DefaultCatalog() (*Catalog, error) {
	file, err := assets.PersonasFS.Open(assets.PersonasPath)
	if err != nil {
		return nil, fmt.Errorf("open embedded persona catalog: %w", err)
	}
	defer file.Close()

	return ParseCatalog(file)
}

// Resolve returns the config for id. It fails with *UnknownPersonaError
// for ids outside the persona set.
func (c *Catalog) Resolve(id PersonaID) (PersonaConfig, error) {
	config, ok := c.personas[id]
	if !ok {
		return PersonaConfig{}, &UnknownPersonaError{ID: string(id)}
	}
	return config, nil
}

// IDs returns persona ids in display order.
func (c *Catalog) IDs() []PersonaID {
	return AllPersonaIDs()
}

// All returns every persona config in display order.
func (c *Catalog) All() []PersonaConfig {
	results := make([]PersonaConfig, 0, len(personaOrder))
	for _, id := range personaOrder {
		results = append(results, c.personas[id])
	}
	return results
}
