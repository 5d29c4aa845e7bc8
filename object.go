package godto

import "sort"

// Object is a DTO instance: one storage slot per declared field of its schema
// plus the serialization filters set by Only/Except.
type Object struct {
	schema *Schema
	slots  []slot
	only   []string
	except []string
}

// Construct builds an object of schema s from input. Every declared field is
// filled in declaration order; the first violation aborts construction and no
// object is returned.
func Construct(s *Schema, input map[string]any) (*Object, error) {
	o := &Object{schema: s, slots: make([]slot, len(s.fields))}
	for i, f := range s.fields {
		if f.HasDefault {
			o.slots[i].value = cloneValue(f.Default)
		}
	}
	if err := o.Fill(input); err != nil {
		return nil, err
	}
	return o, nil
}

// MustConstruct is like Construct but panics on error.
func MustConstruct(s *Schema, input map[string]any) *Object {
	o, err := Construct(s, input)
	if err != nil {
		panic(err)
	}
	return o
}

// Fill assigns input to the object's fields. A field missing from input keeps
// its current value when it has a default, is nullable, or was filled before;
// otherwise Fill fails with uninitialized. Fill is all-or-nothing: on error
// the object is unchanged.
func (o *Object) Fill(input map[string]any) error {
	next := make([]slot, len(o.slots))
	copy(next, o.slots)

	consumed := 0
	for i, f := range o.schema.fields {
		raw, ok := input[f.Name]
		if ok {
			consumed++
		} else {
			if !f.HasDefault && !f.Spec.Nullable() && !next[i].initialized {
				return uninitialized(f)
			}
			raw = next[i].value
		}
		if err := f.assign(&next[i], raw); err != nil {
			return err
		}
	}

	if o.schema.unknownPolicy == UnknownStrict && consumed < len(input) {
		return unknownProperties(o.schema, o.unknownKeys(input))
	}
	o.slots = next
	return nil
}

// unknownKeys returns input keys matching no field, sorted.
func (o *Object) unknownKeys(input map[string]any) []string {
	var out []string
	for k := range input {
		if _, known := o.schema.index[k]; !known {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Schema returns the schema the object was constructed from.
func (o *Object) Schema() *Schema { return o.schema }

// Get returns the current value of the named field.
func (o *Object) Get(name string) (any, bool) {
	i, ok := o.schema.index[name]
	if !ok {
		return nil, false
	}
	return o.slots[i].value, true
}

// Has reports whether name is a declared field.
func (o *Object) Has(name string) bool {
	_, ok := o.schema.index[name]
	return ok
}

// Initialized reports whether the named field has been assigned.
func (o *Object) Initialized(name string) bool {
	i, ok := o.schema.index[name]
	return ok && o.slots[i].initialized
}

// Keys returns field names in declaration order.
func (o *Object) Keys() []string { return o.schema.Keys() }

// All returns every field value, ignoring Only/Except filters. Nested objects
// are returned as is.
func (o *Object) All() map[string]any {
	out := make(map[string]any, len(o.slots))
	for i, f := range o.schema.fields {
		out[f.Name] = o.slots[i].value
	}
	return out
}

// Only returns a copy of the object whose serialization is restricted to keys.
// Calls accumulate. The receiver is not modified.
func (o *Object) Only(keys ...string) *Object {
	c := o.clone()
	c.only = append(c.only, keys...)
	return c
}

// Except returns a copy of the object whose serialization omits keys. Keys may
// address nested plain mappings with dots ("meta.tags"). Calls accumulate. The
// receiver is not modified.
func (o *Object) Except(keys ...string) *Object {
	c := o.clone()
	c.except = append(c.except, keys...)
	return c
}

func (o *Object) clone() *Object {
	return &Object{
		schema: o.schema,
		slots:  append([]slot(nil), o.slots...),
		only:   append([]string(nil), o.only...),
		except: append([]string(nil), o.except...),
	}
}

// Lookup returns the named field of r converted to T.
func Lookup[T any](r Reader, name string) (T, bool) {
	var zero T
	v, ok := r.Get(name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Reader is the read access shared by *Object and *View.
type Reader interface {
	Get(name string) (any, bool)
	Has(name string) bool
	Keys() []string
	Schema() *Schema
	ToPlainObject() map[string]any
}

var (
	_ Reader = (*Object)(nil)
	_ Reader = (*View)(nil)
)
