package i18n

import (
	"strings"
	"testing"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg == "invalid_type" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("uninitialized", map[string]string{"field": "Person.name"}); !strings.Contains(msg, "Person.name") || strings.HasPrefix(msg, "non-nullable") {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Placeholders(t *testing.T) {
	msg := T("unknown_properties", map[string]string{"keys": "extra`, `other", "schema": "Person"})
	want := "properties `extra`, `other` not found on Person"
	if msg != want {
		t.Fatalf("got %q want %q", msg, want)
	}
	// placeholders without data stay as-is
	if msg := T("immutable_write", nil); !strings.Contains(msg, "{field}") {
		t.Fatalf("expected raw template, got %q", msg)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, _ map[string]string) string { return strings.ToUpper(code) }

func TestTranslator_Custom(t *testing.T) {
	SetTranslator(upperTranslator{})
	defer SetTranslator(nil)
	if msg := T("invalid_type", nil); msg != "INVALID_TYPE" {
		t.Fatalf("custom translator not used: %q", msg)
	}
	SetTranslator(nil)
	if msg := T("unknown", nil); msg != "unknown" {
		t.Fatalf("unknown codes fall back to the code itself, got %q", msg)
	}
}
