// Package schemadef loads godto schemas from declarative documents.
//
// A document lists schemas with their fields and textual type annotations.
// YAML and JSON are both accepted:
//
//	schemas:
//	  - name: Address
//	    fields:
//	      - {name: city, type: string}
//	  - name: Person
//	    unknown: strip
//	    fields:
//	      - {name: name, type: string}
//	      - {name: age, type: "int|null"}
//	      - {name: address, type: Address}
//	      - {name: tags, type: "string[]", default: []}
//
// Schemas may reference each other (and themselves) regardless of order.
package schemadef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reoring/godto"
	"github.com/reoring/godto/source"
)

// Document is the top-level structure of a schema definition file.
type Document struct {
	Schemas []SchemaDoc `yaml:"schemas"`
}

// SchemaDoc declares one schema.
type SchemaDoc struct {
	Name string `yaml:"name"`
	// Unknown is "strict" (default) or "strip".
	Unknown string     `yaml:"unknown"`
	Fields  []FieldDoc `yaml:"fields"`
}

// FieldDoc declares one field. An absent type declares an untyped field;
// an absent default (as opposed to default: null) declares no default.
type FieldDoc struct {
	Name    string    `yaml:"name"`
	Type    string    `yaml:"type"`
	Default yaml.Node `yaml:"default"`
}

// Options configures loading.
type Options struct {
	// Logger receives warnings about type names that resolve to no schema.
	// Nil discards them.
	Logger *slog.Logger
}

// Load parses a schema document and returns a registry holding its schemas.
func Load(data []byte, opts ...Options) (*godto.Registry, error) {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("schemadef: empty document")
		}
		return nil, fmt.Errorf("schemadef: %w", err)
	}
	return Build(doc, logger)
}

// LoadFile reads and parses a schema document from path.
func LoadFile(path string, opts ...Options) (*godto.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemadef: %w", err)
	}
	return Load(data, opts...)
}

// Build turns a decoded document into a registry. Schemas are registered
// before any field is resolved so references may point forward.
func Build(doc Document, logger *slog.Logger) (*godto.Registry, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	reg := godto.NewRegistry()
	schemas := make([]*godto.Schema, len(doc.Schemas))
	for i, sd := range doc.Schemas {
		if sd.Name == "" {
			return nil, fmt.Errorf("schemadef: schema #%d has no name", i)
		}
		s := godto.NewSchema(sd.Name)
		switch sd.Unknown {
		case "", "strict":
			s.UnknownStrict()
		case "strip":
			s.UnknownStrip()
		default:
			return nil, fmt.Errorf("schemadef: schema %s: unknown policy %q (want strict or strip)", sd.Name, sd.Unknown)
		}
		if err := reg.Register(s); err != nil {
			return nil, fmt.Errorf("schemadef: %w", err)
		}
		schemas[i] = s
	}

	for i, sd := range doc.Schemas {
		s := schemas[i]
		seen := make(map[string]struct{}, len(sd.Fields))
		for _, fd := range sd.Fields {
			if fd.Name == "" {
				return nil, fmt.Errorf("schemadef: schema %s: field without name", sd.Name)
			}
			if _, dup := seen[fd.Name]; dup {
				return nil, fmt.Errorf("schemadef: schema %s: duplicate field %q", sd.Name, fd.Name)
			}
			seen[fd.Name] = struct{}{}

			spec := reg.ParseType(fd.Type)
			if fd.Type != "" && !spec.Declared() {
				logger.Warn("malformed type annotation, field is untyped", "schema", sd.Name, "field", fd.Name, "type", fd.Type)
			}
			for _, name := range spec.Unresolved() {
				logger.Warn("unresolved type name", "schema", sd.Name, "field", fd.Name, "type", name)
			}

			var opts []godto.FieldOption
			if fd.Default.Kind != 0 {
				dv, err := source.YAMLNode(&fd.Default)
				if err != nil {
					return nil, fmt.Errorf("schemadef: %s.%s default: %w", sd.Name, fd.Name, err)
				}
				opts = append(opts, godto.Default(dv))
			}
			s.Field(fd.Name, spec, opts...)
		}
		logger.Debug("schema loaded", "schema", sd.Name, "fields", len(sd.Fields), "strict", s.Strict())
	}
	return reg, nil
}
