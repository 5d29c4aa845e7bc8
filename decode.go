package godto

import (
	"io"

	"github.com/reoring/godto/source"
)

// ConstructJSON decodes a JSON object and constructs an object of schema s
// from it. Decoding errors are returned as is; schema violations as *Error.
func ConstructJSON(s *Schema, data []byte, opts ...source.Options) (*Object, error) {
	m, err := source.JSON(data, opts...)
	if err != nil {
		return nil, err
	}
	return Construct(s, m)
}

// ConstructJSONReader is ConstructJSON over an io.Reader.
func ConstructJSONReader(s *Schema, r io.Reader, opts ...source.Options) (*Object, error) {
	m, err := source.JSONReader(r, opts...)
	if err != nil {
		return nil, err
	}
	return Construct(s, m)
}

// ConstructYAML decodes the first YAML document and constructs an object of
// schema s from it.
func ConstructYAML(s *Schema, data []byte, opts ...source.Options) (*Object, error) {
	m, err := source.YAML(data, opts...)
	if err != nil {
		return nil, err
	}
	return Construct(s, m)
}
