// Package datafile loads the YAML data files that ship with toyvox
// (character catalog, question bank) and checks them against a JSON schema
// before decoding.
package datafile

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Schema names a JSON schema definition.
type Schema struct {
	Name       string
	Definition map[string]any
}

// ErrInvalidData is returned when a data file fails to parse or validate.
type ErrInvalidData struct {
	Source string
	Err    error
}

func (e *ErrInvalidData) Error() string {
	return fmt.Sprintf("invalid data in %s: %v", e.Source, e.Err)
}

func (e *ErrInvalidData) Unwrap() error { return e.Err }

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// Decode validates YAML data against schema and decodes it into out.
// source is used in error messages only.
func Decode(source string, data []byte, schema *Schema, out any) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return &ErrInvalidData{Source: source, Err: fmt.Errorf("parse yaml: %w", err)}
	}

	if schema != nil {
		// The validator wants JSON-shaped values, so normalize through
		// encoding/json first.
		b, err := json.Marshal(raw)
		if err != nil {
			return &ErrInvalidData{Source: source, Err: fmt.Errorf("normalize: %w", err)}
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			return &ErrInvalidData{Source: source, Err: fmt.Errorf("normalize: %w", err)}
		}

		compiled, err := compile(schema)
		if err != nil {
			return fmt.Errorf("compile schema %q: %w", schema.Name, err)
		}
		if err := compiled.Validate(parsed); err != nil {
			return &ErrInvalidData{Source: source, Err: fmt.Errorf("schema validation failed: %w", err)}
		}
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return &ErrInvalidData{Source: source, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// DecodeFile reads path and calls Decode.
func DecodeFile(path string, schema *Schema, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(path, data, schema, out)
}

func compile(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
