package godto

import "strconv"

// cast converts array-shaped raw input into a nested object or a collection of
// nested objects when spec names a schema for it. Anything it cannot cast is
// returned unchanged and left for validation.
func cast(spec TypeSpec, raw any) (any, error) {
	if !isRawArray(raw) {
		return raw, nil
	}
	if list, ok := asList(raw); ok && isCollectionInput(list) {
		return castCollection(spec, raw, list)
	}
	return castObject(spec, raw)
}

// isCollectionInput reports whether list looks like a list of objects: it is
// non-empty and every element is itself a list or mapping. An empty list is
// ambiguous and never treated as a collection.
func isCollectionInput(list []any) bool {
	if len(list) == 0 {
		return false
	}
	for _, v := range list {
		if !isRawArray(v) {
			return false
		}
	}
	return true
}

// firstRef returns the first schema referenced by tags, in declaration order.
func firstRef(tags []TypeTag) *Schema {
	for _, t := range tags {
		if t.kind == tagRef && t.schema != nil {
			return t.schema
		}
	}
	return nil
}

func castObject(spec TypeSpec, raw any) (any, error) {
	target := firstRef(spec.tags)
	if target == nil {
		return raw, nil
	}
	obj, err := Construct(target, fillInput(raw))
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func castCollection(spec TypeSpec, raw any, list []any) (any, error) {
	target := firstRef(spec.elems)
	if target == nil {
		return raw, nil
	}
	items := make([]any, 0, len(list))
	for i, item := range list {
		obj, err := Construct(target, fillInput(item))
		if err != nil {
			return nil, rebase(err, "/"+strconv.Itoa(i))
		}
		items = append(items, obj)
	}
	return &Collection{items: items}, nil
}

// fillInput turns array-shaped raw input into construction input. Lists are
// keyed by their positions.
func fillInput(raw any) map[string]any {
	if m, ok := asMap(raw); ok {
		return m
	}
	list, _ := asList(raw)
	m := make(map[string]any, len(list))
	for i, v := range list {
		m[strconv.Itoa(i)] = v
	}
	return m
}
