package godto

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches one union member: a type name with optional array markers.
var tokenPattern = regexp.MustCompile(`^[A-Za-z_\\][A-Za-z0-9_\\.]*(\[\])*$`)

// ParseType resolves a textual type annotation such as "int|string|null" or
// "Address[]" into a TypeSpec. Names that are not primitives are resolved
// through lookup (which may be nil). An empty or malformed annotation yields
// the untyped spec. A leading '?' is shorthand for "|null".
func ParseType(annotation string, lookup func(name string) (*Schema, bool)) TypeSpec {
	text := strings.TrimSpace(annotation)
	nullable := false
	if strings.HasPrefix(text, "?") {
		nullable = true
		text = strings.TrimSpace(text[1:])
	}
	if text == "" {
		return TypeSpec{}
	}
	var tags []TypeTag
	for _, tok := range strings.Split(text, "|") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if !tokenPattern.MatchString(tok) {
			return TypeSpec{}
		}
		tags = append(tags, parseToken(tok, lookup))
	}
	if nullable {
		tags = append(tags, Null())
	}
	return Types(tags...)
}

func parseToken(tok string, lookup func(string) (*Schema, bool)) TypeTag {
	depth := 0
	for strings.HasSuffix(tok, "[]") {
		tok = strings.TrimSuffix(tok, "[]")
		depth++
	}
	tag := baseTag(tok, lookup)
	for ; depth > 0; depth-- {
		tag = ArrayOf(tag)
	}
	return tag
}

func baseTag(name string, lookup func(string) (*Schema, bool)) TypeTag {
	switch name {
	case "int":
		return Int()
	case "integer":
		return primitive(TagInteger, name)
	case "bool":
		return Bool()
	case "boolean":
		return primitive(TagBoolean, name)
	case "float":
		return Float()
	case "double":
		return primitive(TagDouble, name)
	case "string":
		return String()
	case "array":
		return Array()
	case "mixed":
		return Mixed()
	case "null":
		return Null()
	}
	if lookup != nil {
		if s, ok := lookup(name); ok && s != nil {
			return Ref(s)
		}
		// fully qualified names fall back to their last segment
		if i := strings.LastIndexAny(name, `\.`); i >= 0 && i < len(name)-1 {
			if s, ok := lookup(name[i+1:]); ok && s != nil {
				return Ref(s)
			}
		}
	}
	return Named(name)
}

// Registry maps schema names to schemas so textual annotations can reference
// them. Registration order is kept.
type Registry struct {
	schemas map[string]*Schema
	order   []string
}

// NewRegistry returns a registry holding schemas. It panics on duplicate names.
func NewRegistry(schemas ...*Schema) *Registry {
	r := &Registry{schemas: map[string]*Schema{}}
	for _, s := range schemas {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds s under its name.
func (r *Registry) Register(s *Schema) error {
	if s == nil || s.Name() == "" {
		return fmt.Errorf("godto: cannot register unnamed schema")
	}
	if _, dup := r.schemas[s.Name()]; dup {
		return fmt.Errorf("godto: schema %q already registered", s.Name())
	}
	r.schemas[s.Name()] = s
	r.order = append(r.order, s.Name())
	return nil
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (*Schema, bool) {
	s, ok := r.schemas[name]
	return s, ok
}

// Schemas returns registered schemas in registration order.
func (r *Registry) Schemas() []*Schema {
	out := make([]*Schema, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.schemas[n])
	}
	return out
}

// Names returns registered schema names, sorted.
func (r *Registry) Names() []string {
	out := append([]string(nil), r.order...)
	sort.Strings(out)
	return out
}

// ParseType resolves annotation against the registered schemas.
func (r *Registry) ParseType(annotation string) TypeSpec {
	return ParseType(annotation, r.Lookup)
}
