package godto

import (
	"iter"

	"github.com/goccy/go-json"
)

// Collection is an ordered, integer-indexed sequence of objects (or nested
// collections and plain values). Casting a list of mappings into a field
// declared as an array of a schema produces a Collection.
type Collection struct {
	items []any
}

// NewCollection returns a collection holding items.
func NewCollection(items ...any) *Collection {
	return &Collection{items: append([]any(nil), items...)}
}

// Len returns the number of items. A nil collection is empty.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns the item at i, or nil when i is out of range.
func (c *Collection) At(i int) any {
	if c == nil || i < 0 || i >= len(c.items) {
		return nil
	}
	return c.items[i]
}

// Object returns the item at i when it is an object. Collections reached
// through a View hold views instead, so Object reports false for them.
func (c *Collection) Object(i int) (*Object, bool) {
	o, ok := c.At(i).(*Object)
	return o, ok
}

// Items returns a copy of the items.
func (c *Collection) Items() []any {
	if c == nil {
		return nil
	}
	return append([]any(nil), c.items...)
}

// All iterates over index/item pairs in order.
func (c *Collection) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		if c == nil {
			return
		}
		for i, it := range c.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// ToPlainObject flattens every object and nested collection into its plain form.
func (c *Collection) ToPlainObject() []any {
	if c == nil {
		return nil
	}
	out := make([]any, len(c.items))
	for i, it := range c.items {
		out[i] = flatten(it)
	}
	return out
}

// MarshalJSON encodes the plain form, keeping field order of nested objects.
func (c *Collection) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	return json.Marshal(orderedValue(c.items))
}

// MarshalYAML encodes the plain form, keeping field order of nested objects.
func (c *Collection) MarshalYAML() (any, error) {
	if c == nil {
		return nil, nil
	}
	return orderedValue(c.items), nil
}
