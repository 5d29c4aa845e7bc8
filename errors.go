package godto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/godto/i18n"
)

// Error codes carried by *Error.
const (
	CodeUninitialized     = "uninitialized"
	CodeUnknownProperties = "unknown_properties"
	CodeInvalidType       = "invalid_type"
	CodeImmutableWrite    = "immutable_write"
)

// ErrSchemaViolation is matched by every *Error via errors.Is.
var ErrSchemaViolation = errors.New("godto: schema violation")

// Error reports a schema violation. Code selects the sub-reason; the remaining
// fields are populated depending on the code.
type Error struct {
	Code   string
	Path   string // JSON Pointer of the offending field (for example: /items/2/sku).
	Schema string // Name of the schema that rejected the input.
	Field  string // Field name, empty for unknown_properties.
	// Keys lists the leftover input keys for unknown_properties, sorted.
	Keys []string
	// Expected is the declared type list for invalid_type, in declaration order.
	Expected []string
	// Got describes the observed value kind for invalid_type. Values are never
	// embedded verbatim beyond scalars.
	Got string
}

// FQN returns the fully qualified field name (Schema.field).
func (e *Error) FQN() string {
	switch {
	case e.Field == "":
		return e.Schema
	case e.Schema == "":
		return e.Field
	}
	return e.Schema + "." + e.Field
}

func (e *Error) Error() string {
	data := map[string]string{
		"field":    e.FQN(),
		"schema":   e.Schema,
		"keys":     strings.Join(e.Keys, "`, `"),
		"expected": strings.Join(e.Expected, ", "),
		"got":      e.Got,
	}
	msg := i18n.T(e.Code, data)
	if e.Path == "" {
		return msg
	}
	// e.g. invalid_type at /address/city: ...
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Path, msg)
}

// Is reports whether target is ErrSchemaViolation.
func (e *Error) Is(target error) bool { return target == ErrSchemaViolation }

// AsError extracts an *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// rebase prefixes the error path with base. Non-*Error values are returned as is.
func rebase(err error, base string) error {
	e, ok := AsError(err)
	if !ok {
		return err
	}
	out := *e
	if out.Path == "" || out.Path == "/" {
		out.Path = base
	} else {
		out.Path = base + out.Path
	}
	return &out
}

// pointerToken escapes a key for use as a JSON Pointer segment (RFC 6901).
func pointerToken(name string) string {
	return "/" + strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
}

func uninitialized(f *FieldDef) *Error {
	return &Error{Code: CodeUninitialized, Path: pointerToken(f.Name), Schema: f.schemaName(), Field: f.Name}
}

func unknownProperties(s *Schema, keys []string) *Error {
	return &Error{Code: CodeUnknownProperties, Path: "/", Schema: s.Name(), Keys: keys}
}

func invalidType(f *FieldDef, v any) *Error {
	return &Error{
		Code:     CodeInvalidType,
		Path:     pointerToken(f.Name),
		Schema:   f.schemaName(),
		Field:    f.Name,
		Expected: f.Spec.Names(),
		Got:      describe(v),
	}
}

func immutableWrite(s *Schema, name string) *Error {
	return &Error{Code: CodeImmutableWrite, Path: pointerToken(name), Schema: s.Name(), Field: name}
}
