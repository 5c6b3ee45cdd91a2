// Package plugins has helpers shared by the built-in plugins: config schemas reflected from Go
// structs, config validation and decoding, typed access to merged params.
package plugins

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"

	"github.com/invopop/jsonschema"

	"github.com/umputun/manifold/pkg/domain"
	"github.com/umputun/manifold/pkg/feeds"
	"github.com/umputun/manifold/pkg/schema"
)

// ModuleName is the module all built-in service types are registered under
const ModuleName = "manifold/builtin"

// RedactedMask replaces secrets in redacted configs
const RedactedMask = "********"

// ReflectSchema builds a JSON schema object from a config struct
func ReflectSchema(v any) domain.JSONObject {
	r := &jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true}
	data, err := json.Marshal(r.Reflect(v))
	if err != nil {
		panic(fmt.Sprintf("marshal reflected schema of %T: %v", v, err))
	}
	var res domain.JSONObject
	if err := json.Unmarshal(data, &res); err != nil {
		panic(fmt.Sprintf("unmarshal reflected schema of %T: %v", v, err))
	}
	delete(res, "$id")
	return res
}

// ConfigValidator checks raw configs against a compiled config schema
type ConfigValidator struct {
	validator schema.Validator
}

// NewConfigValidator compiles the config schema, an uncompilable schema is a programming error
func NewConfigValidator(configSchema domain.JSONObject) *ConfigValidator {
	v, err := schema.NewService().ValidateSchema(configSchema)
	if err != nil {
		panic(fmt.Sprintf("compile config schema: %v", err))
	}
	return &ConfigValidator{validator: v}
}

// Decode validates a raw config and decodes it into target, failures are *feeds.InvalidServiceConfigError
func (c *ConfigValidator) Decode(config, target any) error {
	if config == nil {
		return &feeds.InvalidServiceConfigError{Reason: "config is required"}
	}
	if err := c.validator.Validate(config); err != nil {
		res := &feeds.InvalidServiceConfigError{Reason: err.Error()}
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			for _, loc := range verr.Locations {
				if len(loc) > 0 {
					res.InvalidKeys = append(res.InvalidKeys, loc)
				}
			}
		}
		return res
	}
	data, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return &feeds.InvalidServiceConfigError{Reason: err.Error()}
	}
	return nil
}

// CheckHTTPURL returns an invalid config error for key unless raw is an absolute http(s) url
func CheckHTTPURL(raw, key string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &feeds.InvalidServiceConfigError{InvalidKeys: [][]string{{key}}, Reason: "http or https url expected"}
	}
	return u, nil
}

// ToObject converts a decoded config struct back to a JSON object
func ToObject(v any) domain.JSONObject {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var res domain.JSONObject
	if err := json.Unmarshal(data, &res); err != nil {
		return nil
	}
	return res
}

// IntParam returns an integral param, numbers decoded from JSON come as float64
func IntParam(params domain.JSONObject, key string) (int, bool) {
	switch v := params[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	}
	return 0, false
}

// StringParam returns a non-empty string param
func StringParam(params domain.JSONObject, key string) (string, bool) {
	s, ok := params[key].(string)
	return s, ok && s != ""
}
