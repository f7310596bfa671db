package schema

import (
	"fmt"
	"os"
	"strings"

	"github.com/dlclark/regexp2"
	"gopkg.in/yaml.v3"
)

// SchemaFile represents the root of a YAML schema definition file.
type SchemaFile struct {
	// Version of the schema file format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Properties lists the property definitions.
	Properties []PropertyDef `yaml:"properties"`
}

// PropertyDef is one property entry of a schema definition file.
type PropertyDef struct {
	// Name is the property name. Must be a plain identifier.
	Name string `yaml:"name"`

	// Type is the declared type name, resolved through a TypeRegistry.
	// Empty means an index-only descriptor with no scalar type.
	Type string `yaml:"type,omitempty"`

	// Indexed marks the property as supporting indexed element access.
	Indexed bool `yaml:"indexed,omitempty"`

	// Component is the array element type name for indexed properties.
	Component string `yaml:"component,omitempty"`
}

var identPattern = regexp2.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`, 0)

// LoadFile loads and parses a YAML schema definition from the given path.
func LoadFile(path string, reg *TypeRegistry) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data, reg)
}

// Parse parses YAML data into a Schema, resolving type names through reg.
func Parse(data []byte, reg *TypeRegistry) (Schema, error) {
	var sf SchemaFile

	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&sf)

	s := make(Schema, len(sf.Properties))

	for _, def := range sf.Properties {
		d, err := def.descriptor(reg)
		if err != nil {
			return nil, err
		}

		if _, ok := s[d.Name]; ok {
			return nil, fmt.Errorf("duplicate property %q", d.Name)
		}

		s[d.Name] = d
	}

	return s, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(sf *SchemaFile) {
	if sf.Version == "" {
		sf.Version = "1"
	}

	for i := range sf.Properties {
		p := &sf.Properties[i]
		if p.Indexed && p.Component == "" && p.Type != "" {
			p.Component = strings.TrimPrefix(p.Type, "[]")
		}
	}
}

func (p PropertyDef) descriptor(reg *TypeRegistry) (Descriptor, error) {
	if ok, err := identPattern.MatchString(p.Name); err != nil || !ok {
		return Descriptor{}, fmt.Errorf("invalid property name %q", p.Name)
	}

	d := Descriptor{Name: p.Name, Indexed: p.Indexed}

	if p.Type != "" {
		t, ok := reg.Lookup(p.Type)
		if !ok {
			return Descriptor{}, fmt.Errorf("property %q: unknown type %q", p.Name, p.Type)
		}

		d.Type = t
	}

	if p.Indexed && p.Component != "" {
		c, ok := reg.Lookup(p.Component)
		if !ok {
			return Descriptor{}, fmt.Errorf("property %q: unknown component type %q", p.Name, p.Component)
		}

		d.Component = c
	}

	return d, nil
}

// Marshal serializes a SchemaFile to YAML.
func Marshal(sf *SchemaFile) ([]byte, error) {
	return yaml.Marshal(sf)
}

// WriteFile writes a SchemaFile to the given path.
func WriteFile(sf *SchemaFile, path string) error {
	data, err := Marshal(sf)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
