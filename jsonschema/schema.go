package jsonschema

// Draft is the dialect emitted by exporters.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	SchemaURI string             `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Ref       string             `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Defs      map[string]*Schema `json:"$defs,omitempty" yaml:"$defs,omitempty"`
	Title     string             `json:"title,omitempty" yaml:"title,omitempty"`
	Type      string             `json:"type,omitempty" yaml:"type,omitempty"`
	Default   any                `json:"default,omitempty" yaml:"default,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Composition
	AnyOf []*Schema `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	Not   *Schema   `json:"not,omitempty" yaml:"not,omitempty"`
}
