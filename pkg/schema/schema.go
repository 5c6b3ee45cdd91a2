// Package schema compiles JSON schemas supplied at runtime (plugin config schemas, topic
// params schemas, feed variable params schemas) and validates untrusted payloads against them.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const resourceURL = "mem://manifold/schema.json"

// Service compiles schemas into validators
type Service struct{}

// NewService makes a schema service
func NewService() *Service {
	return &Service{}
}

// Validator validates instances against one compiled schema
type Validator interface {
	Validate(instance any) error
}

// ValidationError lists the instance locations that failed validation
type ValidationError struct {
	Locations [][]string
	cause     error
}

// Error implements error
func (e *ValidationError) Error() string {
	if len(e.Locations) == 0 {
		return e.cause.Error()
	}
	locs := make([]string, 0, len(e.Locations))
	for _, l := range e.Locations {
		locs = append(locs, "/"+strings.Join(l, "/"))
	}
	return fmt.Sprintf("invalid at %s: %v", strings.Join(locs, ", "), e.cause)
}

// Unwrap returns the validator error
func (e *ValidationError) Unwrap() error { return e.cause }

// ValidateSchema compiles the schema, any JSON-marshalable value is accepted
func (s *Service) ValidateSchema(schemaDoc any) (Validator, error) {
	if schemaDoc == nil {
		return nil, fmt.Errorf("empty schema")
	}
	doc, err := normalize(schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("normalize schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	c.UseLoader(jsonschema.SchemeURLLoader{}) // no external refs, schemas come from callers
	c.DefaultDraft(jsonschema.Draft2020)
	c.AssertFormat()
	if err := c.AddResource(resourceURL, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &validator{schema: compiled}, nil
}

type validator struct {
	schema *jsonschema.Schema
}

// Validate returns nil for a valid instance, *ValidationError otherwise
func (v *validator) Validate(instance any) error {
	doc, err := normalize(instance)
	if err != nil {
		return fmt.Errorf("normalize instance: %w", err)
	}
	err = v.schema.Validate(doc)
	if err == nil {
		return nil
	}
	if verr, ok := err.(*jsonschema.ValidationError); ok { //nolint:errorlint // library returns the concrete type
		return &ValidationError{Locations: leafLocations(verr), cause: verr}
	}
	return &ValidationError{cause: err}
}

// normalize round-trips a value through JSON so numbers and structs match what the validator expects
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}

// leafLocations collects unique instance locations of the innermost causes
func leafLocations(verr *jsonschema.ValidationError) [][]string {
	seen := map[string]bool{}
	var res [][]string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			key := strings.Join(e.InstanceLocation, "/")
			if !seen[key] {
				seen[key] = true
				res = append(res, append([]string{}, e.InstanceLocation...))
			}
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(verr)
	sort.Slice(res, func(i, j int) bool { return strings.Join(res[i], "/") < strings.Join(res[j], "/") })
	return res
}
