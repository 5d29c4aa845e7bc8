package godto

// isValid reports whether v is accepted by spec. It never fails; reporting is
// left to the caller.
func isValid(spec TypeSpec, v any) bool {
	if !spec.declared {
		return true
	}
	if spec.nullable && isNil(v) {
		return true
	}
	for _, t := range spec.tags {
		if t.matches(v) {
			return true
		}
	}
	return false
}

// Accepts reports whether v satisfies the spec without casting.
func (s TypeSpec) Accepts(v any) bool { return isValid(s, v) }

func (t TypeTag) matches(v any) bool {
	switch t.kind {
	case tagNamed:
		return false
	case tagRef:
		o, ok := v.(*Object)
		return ok && o != nil && t.schema != nil && o.schema == t.schema
	case tagArrayOf:
		items, ok := elementsOf(v)
		if !ok || t.elem == nil {
			return false
		}
		for _, it := range items {
			if !t.elem.matches(it) {
				return false
			}
		}
		return true
	}
	if t.prim == TagMixed {
		return !isNil(v)
	}
	return kindOf(v) == t.prim
}

func isNil(v any) bool { return kindOf(v) == TagNull }
