// Package source decodes wire formats (JSON, YAML) into the plain mappings
// accepted by godto.Construct.
//
// Decoded values are normalized the same way for both formats: objects become
// map[string]any, arrays []any, integral numbers int64 and other numbers
// float64, so that "int" and "float" declarations behave identically whatever
// the input format.
package source

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/godto/i18n"
)

// Options configures decoding.
type Options struct {
	// AllowDuplicateKeys accepts repeated object keys (last one wins) instead
	// of failing with *DuplicateKeyError.
	AllowDuplicateKeys bool
}

func pick(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[len(opts)-1]
}

// ErrNotObject is returned when the decoded document is not an object.
var ErrNotObject = errors.New("source: document is not an object")

// DuplicateKeyError reports a repeated key in an object. Line and Col are set
// for YAML input only (1-based, 0 when unknown).
type DuplicateKeyError struct {
	Key  string
	Path string // JSON Pointer of the duplicate.
	Line int
	Col  int
}

func (e *DuplicateKeyError) Error() string {
	msg := i18n.T("duplicate_key", map[string]string{"key": strconv.Quote(e.Key)})
	if e.Line > 0 {
		return fmt.Sprintf("source: %s at %s (%d:%d)", msg, e.Path, e.Line, e.Col)
	}
	return fmt.Sprintf("source: %s at %s", msg, e.Path)
}

func pointerToken(name string) string {
	return "/" + strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
