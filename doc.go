// Package godto provides typed, validated data transfer objects built from
// loosely typed input such as decoded JSON or YAML.
//
// - Schemas declare ordered fields, each with a TypeSpec (a union of type tags)
// and an optional default
// - Construct casts nested mappings into objects and lists of mappings into
// Collections, validates every field, and stops at the first violation
// - Violations are reported as *Error with a code and a JSON Pointer path
// - Objects serialize back to plain mappings (ToPlainObject, JSON, YAML) with
// Only/Except projections; Immutable wraps an object in a read-only View
//
// Design policy:
// - Keep the public API in the root package; input decoding lives in source/,
// key filtering in arr/, messages in i18n/ and declarative schemas in schemadef/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	address := godto.NewSchema("Address").
//		Field("city", godto.Types(godto.String()))
//	person := godto.NewSchema("Person").
//		Field("name", godto.Types(godto.String())).
//		Field("age", godto.Nullable(godto.Int())).
//		Field("address", godto.Types(godto.Ref(address)))
//
//	obj, err := godto.ConstructJSON(person, data)
//	plain := obj.Except("age").ToPlainObject()
package godto
