package godto

import (
	"fmt"

	js "github.com/reoring/godto/jsonschema"
)

// JSONSchema projects the schema into a JSON Schema document. Referenced
// schemas are emitted under $defs. Fields without a default that are not
// nullable are required; strict schemas forbid additional properties.
func (s *Schema) JSONSchema() (*js.Schema, error) {
	ex := &exporter{defs: map[string]*js.Schema{}, seen: map[string]*Schema{}}
	root, err := ex.object(s)
	if err != nil {
		return nil, err
	}
	root.SchemaURI = js.Draft
	root.Title = s.name
	if len(ex.defs) > 0 {
		root.Defs = ex.defs
	}
	return root, nil
}

type exporter struct {
	defs map[string]*js.Schema
	seen map[string]*Schema
}

func (ex *exporter) object(s *Schema) (*js.Schema, error) {
	out := &js.Schema{Type: "object", Properties: make(map[string]*js.Schema, len(s.fields))}
	for _, f := range s.fields {
		ps, err := ex.spec(f.Spec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.FQN(), err)
		}
		if f.HasDefault {
			ps.Default = f.Default
		}
		out.Properties[f.Name] = ps
		if !f.HasDefault && !f.Spec.Nullable() {
			out.Required = append(out.Required, f.Name)
		}
	}
	// additionalProperties: false for strict, true for strip
	out.AdditionalProperties = !s.Strict()
	return out, nil
}

func (ex *exporter) spec(spec TypeSpec) (*js.Schema, error) {
	if !spec.declared {
		return &js.Schema{}, nil
	}
	if len(spec.tags) == 1 {
		return ex.tag(spec.tags[0])
	}
	out := &js.Schema{AnyOf: make([]*js.Schema, 0, len(spec.tags))}
	for _, t := range spec.tags {
		ts, err := ex.tag(t)
		if err != nil {
			return nil, err
		}
		out.AnyOf = append(out.AnyOf, ts)
	}
	return out, nil
}

func (ex *exporter) tag(t TypeTag) (*js.Schema, error) {
	switch t.kind {
	case tagNamed:
		// matches nothing
		return &js.Schema{Not: &js.Schema{}}, nil
	case tagRef:
		if err := ex.define(t.schema); err != nil {
			return nil, err
		}
		return &js.Schema{Ref: "#/$defs/" + t.schema.name}, nil
	case tagArrayOf:
		items, err := ex.tag(*t.elem)
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "array", Items: items}, nil
	}
	switch t.prim {
	case TagInteger:
		return &js.Schema{Type: "integer"}, nil
	case TagDouble:
		return &js.Schema{Type: "number"}, nil
	case TagBoolean:
		return &js.Schema{Type: "boolean"}, nil
	case TagString:
		return &js.Schema{Type: "string"}, nil
	case TagNull:
		return &js.Schema{Type: "null"}, nil
	case TagArray:
		return &js.Schema{AnyOf: []*js.Schema{{Type: "array"}, {Type: "object"}}}, nil
	case TagMixed:
		return &js.Schema{Not: &js.Schema{Type: "null"}}, nil
	}
	return nil, fmt.Errorf("unsupported type tag %q", t.String())
}

// define emits s under $defs once, guarding against recursion and name clashes.
func (ex *exporter) define(s *Schema) error {
	if s == nil {
		return fmt.Errorf("nil schema reference")
	}
	if prev, ok := ex.seen[s.name]; ok {
		if prev != s {
			return fmt.Errorf("two schemas named %q", s.name)
		}
		return nil
	}
	ex.seen[s.name] = s
	def, err := ex.object(s)
	if err != nil {
		return err
	}
	ex.defs[s.name] = def
	return nil
}
