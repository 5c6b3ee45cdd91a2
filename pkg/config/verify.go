package config

import (
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/umputun/manifold/pkg/schema"
)

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true}
	return r.Reflect(&Config{})
}

// Verify validates the config against the schema reflected from Config
func Verify(cfg *Config) error {
	v, err := schema.NewService().ValidateSchema(GenerateSchema())
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	if err := v.Validate(cfg); err != nil {
		return fmt.Errorf("verify config: %w", err)
	}
	return nil
}
