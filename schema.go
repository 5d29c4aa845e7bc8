package godto

// UnknownPolicy controls how input keys that match no declared field are handled.
type UnknownPolicy int

const (
	UnknownStrict UnknownPolicy = iota // Reject unknown keys with an error.
	UnknownStrip                       // Drop unknown keys.
)

// Schema is the static declaration of a DTO: an ordered list of fields with
// their TypeSpecs and defaults. Build it once, before constructing objects;
// schemas must not be changed while objects are being constructed from them.
//
//	address := godto.NewSchema("Address").
//		Field("city", godto.Types(godto.String()))
//	person := godto.NewSchema("Person").
//		Field("name", godto.Types(godto.String())).
//		Field("age", godto.Nullable(godto.Int())).
//		Field("address", godto.Types(godto.Ref(address)))
type Schema struct {
	name          string
	fields        []*FieldDef
	index         map[string]int
	unknownPolicy UnknownPolicy
}

// NewSchema creates an empty schema with safe defaults (UnknownStrict).
func NewSchema(name string) *Schema {
	return &Schema{name: name, index: map[string]int{}, unknownPolicy: UnknownStrict}
}

// FieldOption configures a field declaration.
type FieldOption func(*FieldDef)

// Default sets the value used when the field is missing from the input. The
// default goes through casting and validation like any supplied value.
func Default(v any) FieldOption {
	return func(f *FieldDef) {
		f.Default = v
		f.HasDefault = true
	}
}

// Field declares a field. Declaring an existing name replaces it in place,
// keeping its position.
func (s *Schema) Field(name string, spec TypeSpec, opts ...FieldOption) *Schema {
	f := &FieldDef{Name: name, Spec: spec, schema: s}
	for _, o := range opts {
		o(f)
	}
	if i, ok := s.index[name]; ok {
		s.fields[i] = f
		return s
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, f)
	return s
}

// UnknownStrict rejects input keys that match no field (the default).
func (s *Schema) UnknownStrict() *Schema {
	s.unknownPolicy = UnknownStrict
	return s
}

// UnknownStrip silently drops input keys that match no field.
func (s *Schema) UnknownStrip() *Schema {
	s.unknownPolicy = UnknownStrip
	return s
}

// Name returns the schema name used in errors and type annotations.
func (s *Schema) Name() string { return s.name }

// Strict reports whether unknown input keys are rejected.
func (s *Schema) Strict() bool { return s.unknownPolicy == UnknownStrict }

// UnknownPolicy returns the configured policy.
func (s *Schema) UnknownPolicy() UnknownPolicy { return s.unknownPolicy }

// Fields returns field declarations in declaration order.
func (s *Schema) Fields() []*FieldDef { return append([]*FieldDef(nil), s.fields...) }

// FieldDef returns the declaration of the named field.
func (s *Schema) FieldDef(name string) (*FieldDef, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i], true
}

// Keys returns field names in declaration order.
func (s *Schema) Keys() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}
	return out
}
