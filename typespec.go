package godto

import "strings"

// Canonical runtime tags for primitive TypeTags.
const (
	TagInteger = "integer"
	TagBoolean = "boolean"
	TagDouble  = "double"
	TagString  = "string"
	TagArray   = "array"
	TagMixed   = "mixed"
	TagNull    = "null"
)

type tagKind uint8

const (
	tagPrimitive tagKind = iota
	tagRef               // nested schema
	tagArrayOf           // array whose every element matches elem
	tagNamed             // unresolved name; never matches
)

// TypeTag is one accepted type of a field: a primitive, a reference to another
// schema, or an array of another TypeTag.
type TypeTag struct {
	kind   tagKind
	prim   string // canonical tag for primitives
	decl   string // declared spelling (int, bool, float, ...) or unresolved name
	schema *Schema
	elem   *TypeTag
}

func primitive(canonical, decl string) TypeTag {
	return TypeTag{kind: tagPrimitive, prim: canonical, decl: decl}
}

// Int accepts Go integer values and integral json.Number values.
func Int() TypeTag { return primitive(TagInteger, "int") }

// Bool accepts bool values.
func Bool() TypeTag { return primitive(TagBoolean, "bool") }

// Float accepts float32/float64 values and non-integral json.Number values.
func Float() TypeTag { return primitive(TagDouble, "float") }

// String accepts string values.
func String() TypeTag { return primitive(TagString, "string") }

// Array accepts any list or string-keyed map, including collections.
func Array() TypeTag { return primitive(TagArray, "array") }

// Mixed accepts any non-nil value.
func Mixed() TypeTag { return primitive(TagMixed, "mixed") }

// Null marks a TypeSpec as nullable.
func Null() TypeTag { return primitive(TagNull, "null") }

// Ref accepts objects constructed from s. Array-shaped input is cast into s.
func Ref(s *Schema) TypeTag { return TypeTag{kind: tagRef, schema: s} }

// ArrayOf accepts array-shaped values whose every element matches elem.
func ArrayOf(elem TypeTag) TypeTag {
	e := elem
	return TypeTag{kind: tagArrayOf, elem: &e}
}

// Named is an unresolved type name. It is produced by the text resolver when a
// name matches neither a primitive nor a registered schema, and matches nothing.
func Named(name string) TypeTag { return TypeTag{kind: tagNamed, decl: name} }

// Schema returns the referenced schema for Ref tags, nil otherwise.
func (t TypeTag) Schema() *Schema {
	if t.kind != tagRef {
		return nil
	}
	return t.schema
}

// Elem returns the element tag of an ArrayOf tag.
func (t TypeTag) Elem() (TypeTag, bool) {
	if t.kind != tagArrayOf || t.elem == nil {
		return TypeTag{}, false
	}
	return *t.elem, true
}

// Canonical returns the runtime tag for primitives ("integer", "double", ...)
// and "" for other kinds.
func (t TypeTag) Canonical() string { return t.prim }

// String renders the tag as it would be declared (int, Address, Address[]).
func (t TypeTag) String() string {
	switch t.kind {
	case tagRef:
		if t.schema == nil {
			return "<nil>"
		}
		return t.schema.Name()
	case tagArrayOf:
		if t.elem == nil {
			return "[]"
		}
		return t.elem.String() + "[]"
	}
	return t.decl
}

func (t TypeTag) isNull() bool { return t.kind == tagPrimitive && t.prim == TagNull }

// unresolved appends the names of Named tags reachable from t.
func (t TypeTag) unresolved(dst []string) []string {
	switch t.kind {
	case tagNamed:
		return append(dst, t.decl)
	case tagArrayOf:
		if t.elem != nil {
			return t.elem.unresolved(dst)
		}
	}
	return dst
}

// TypeSpec is the resolved type constraint of one field. The zero value is the
// untyped spec: it accepts any value (nil included) and never casts.
type TypeSpec struct {
	tags     []TypeTag
	elems    []TypeTag
	nullable bool
	declared bool
}

// Types builds a declared TypeSpec accepting any of tags (union semantics).
// Declaration order is kept; it decides which nested schema wins when casting.
// Including Null() makes the spec nullable. Types() with no tags is untyped.
func Types(tags ...TypeTag) TypeSpec {
	if len(tags) == 0 {
		return TypeSpec{}
	}
	s := TypeSpec{declared: true, tags: make([]TypeTag, 0, len(tags))}
	for _, t := range tags {
		if t.isNull() {
			s.nullable = true
		}
		if t.kind == tagArrayOf && t.elem != nil {
			s.elems = append(s.elems, *t.elem)
		}
		s.tags = append(s.tags, t)
	}
	return s
}

// Nullable is shorthand for Types(append(tags, Null())...).
func Nullable(tags ...TypeTag) TypeSpec {
	return Types(append(append([]TypeTag{}, tags...), Null())...)
}

// Untyped returns the untyped TypeSpec.
func Untyped() TypeSpec { return TypeSpec{} }

// Declared reports whether the spec carries a type declaration.
func (s TypeSpec) Declared() bool { return s.declared }

// Nullable reports whether nil is accepted. Untyped specs are always nullable.
func (s TypeSpec) Nullable() bool { return !s.declared || s.nullable }

// Tags returns the accepted tags in declaration order.
func (s TypeSpec) Tags() []TypeTag { return append([]TypeTag(nil), s.tags...) }

// ElementTags returns the element tag of every ArrayOf tag, in declaration order.
func (s TypeSpec) ElementTags() []TypeTag { return append([]TypeTag(nil), s.elems...) }

// Names renders every accepted tag as declared.
func (s TypeSpec) Names() []string {
	out := make([]string, len(s.tags))
	for i, t := range s.tags {
		out[i] = t.String()
	}
	return out
}

// Unresolved returns names that did not resolve to a primitive or schema.
func (s TypeSpec) Unresolved() []string {
	var out []string
	for _, t := range s.tags {
		out = t.unresolved(out)
	}
	return out
}

func (s TypeSpec) String() string {
	if !s.declared {
		return ""
	}
	return strings.Join(s.Names(), "|")
}
