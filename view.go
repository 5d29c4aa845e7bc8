package godto

// View is a read-only view over an object. It owns no data and exposes only
// read accessors and read-only derived operations; every write fails.
type View struct {
	obj *Object
}

// Immutable constructs an object of schema s and wraps it in a View.
func Immutable(s *Schema, input map[string]any) (*View, error) {
	o, err := Construct(s, input)
	if err != nil {
		return nil, err
	}
	return o.Immutable(), nil
}

// Immutable wraps the object in a read-only View.
func (o *Object) Immutable() *View { return &View{obj: o} }

// Get returns the named field. Nested objects are returned as views and
// collections as copies holding views.
func (v *View) Get(name string) (any, bool) {
	val, ok := v.obj.Get(name)
	return readOnly(val), ok
}

// readOnly wraps objects, including those held by collections, in views.
func readOnly(val any) any {
	switch t := val.(type) {
	case *Object:
		if t != nil {
			return t.Immutable()
		}
	case *Collection:
		if t != nil {
			items := make([]any, len(t.items))
			for i, it := range t.items {
				items[i] = readOnly(it)
			}
			return &Collection{items: items}
		}
	}
	return val
}

// Set always fails with immutable_write, whether or not name is a field.
func (v *View) Set(name string, _ any) error { return immutableWrite(v.obj.schema, name) }

// Fill always fails with immutable_write for the first input key (or the
// schema itself when input is empty).
func (v *View) Fill(input map[string]any) error {
	keys := sortedKeys(input)
	if len(keys) == 0 {
		return immutableWrite(v.obj.schema, "")
	}
	return immutableWrite(v.obj.schema, keys[0])
}

// Has reports whether name is a declared field.
func (v *View) Has(name string) bool { return v.obj.Has(name) }

// Keys returns field names in declaration order.
func (v *View) Keys() []string { return v.obj.Keys() }

// All returns every field value, wrapped as Get does.
func (v *View) All() map[string]any {
	out := v.obj.All()
	for k, val := range out {
		out[k] = readOnly(val)
	}
	return out
}

// Schema returns the schema of the underlying object.
func (v *View) Schema() *Schema { return v.obj.schema }

// ToPlainObject returns the plain form of the underlying object.
func (v *View) ToPlainObject() map[string]any { return v.obj.ToPlainObject() }

// Only returns a view over a copy restricted to keys.
func (v *View) Only(keys ...string) *View { return v.obj.Only(keys...).Immutable() }

// Except returns a view over a copy without keys.
func (v *View) Except(keys ...string) *View { return v.obj.Except(keys...).Immutable() }

// MarshalJSON encodes the underlying object.
func (v *View) MarshalJSON() ([]byte, error) { return v.obj.MarshalJSON() }

// MarshalYAML encodes the underlying object.
func (v *View) MarshalYAML() (any, error) { return v.obj.MarshalYAML() }
