package godto

// FieldDef is a declared member of a schema.
type FieldDef struct {
	Name       string
	Spec       TypeSpec
	Default    any
	HasDefault bool

	schema *Schema
}

// FQN returns the fully qualified name, Schema.field.
func (f *FieldDef) FQN() string {
	if f.schema == nil || f.schema.name == "" {
		return f.Name
	}
	return f.schema.name + "." + f.Name
}

func (f *FieldDef) schemaName() string {
	if f.schema == nil {
		return ""
	}
	return f.schema.name
}

// slot is the storage of one field inside an object.
type slot struct {
	value       any
	initialized bool
}

// assign casts raw, validates the result and stores it in s. Casting runs
// first so a nested object or collection is what gets validated. On failure s
// is left untouched.
func (f *FieldDef) assign(s *slot, raw any) error {
	v := raw
	if isRawArray(raw) {
		cv, err := cast(f.Spec, raw)
		if err != nil {
			return rebase(err, pointerToken(f.Name))
		}
		v = cv
	}
	if !isValid(f.Spec, v) {
		return invalidType(f, v)
	}
	s.value = v
	s.initialized = true
	return nil
}
