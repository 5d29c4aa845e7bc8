package godto

import (
	"bytes"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/godto/arr"
)

// ToPlainObject returns the object as a plain mapping. Only/Except filters
// apply to the top level; nested objects and collections are always flattened
// in full.
func (o *Object) ToPlainObject() map[string]any {
	m := o.filtered()
	for k, v := range m {
		m[k] = flatten(v)
	}
	return m
}

// filtered applies Only (when set) or Except to the field values.
func (o *Object) filtered() map[string]any {
	all := o.All()
	if len(o.only) > 0 {
		return arr.Only(all, o.only...)
	}
	return arr.Except(all, o.except...)
}

// flatten replaces objects and collections with their plain form, walking
// plain lists and mappings.
func flatten(v any) any {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return nil
		}
		return t.ToPlainObject()
	case *View:
		return t.ToPlainObject()
	case *Collection:
		if t == nil {
			return nil
		}
		return t.ToPlainObject()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = flatten(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = flatten(vv)
		}
		return out
	}
	return v
}

// orderedMap is a plain mapping that encodes its keys in declaration order.
type orderedMap struct {
	keys   []string
	values map[string]any
}

// ordered is the order-preserving counterpart of ToPlainObject used by the
// JSON and YAML encoders.
func (o *Object) ordered() orderedMap {
	m := o.filtered()
	out := orderedMap{values: make(map[string]any, len(m))}
	for _, k := range o.schema.Keys() {
		v, ok := m[k]
		if !ok {
			continue
		}
		out.keys = append(out.keys, k)
		out.values[k] = orderedValue(v)
	}
	return out
}

func orderedValue(v any) any {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return nil
		}
		return t.ordered()
	case *View:
		return t.obj.ordered()
	case *Collection:
		if t == nil {
			return nil
		}
		return orderedValue(t.items)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = orderedValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = orderedValue(vv)
		}
		return out
	}
	return v
}

func (m orderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m orderedMap) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		vn := &yaml.Node{}
		if err := vn.Encode(m.values[k]); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, vn)
	}
	return n, nil
}

// MarshalJSON encodes the plain form of the object with fields in declaration
// order.
func (o *Object) MarshalJSON() ([]byte, error) { return json.Marshal(o.ordered()) }

// MarshalYAML encodes the plain form of the object with fields in declaration
// order.
func (o *Object) MarshalYAML() (any, error) { return o.ordered().MarshalYAML() }
