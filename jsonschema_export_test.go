package godto_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	sjs "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reoring/godto"
	js "github.com/reoring/godto/jsonschema"
)

func TestJSONSchema_Shape(t *testing.T) {
	person, _ := personSchemas()
	person.Field("tags", godto.Types(godto.ArrayOf(godto.String())), godto.Default([]any{}))

	out, err := person.JSONSchema()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.SchemaURI != js.Draft || out.Title != "Person" || out.Type != "object" {
		t.Fatalf("header: %+v", out)
	}
	if !reflect.DeepEqual(out.Required, []string{"name", "address"}) {
		t.Fatalf("required: %v", out.Required)
	}
	if out.AdditionalProperties != false {
		t.Fatalf("strict schemas forbid additional properties")
	}
	if got := out.Properties["address"].Ref; got != "#/$defs/Address" {
		t.Fatalf("ref: %q", got)
	}
	if _, ok := out.Defs["Address"]; !ok {
		t.Fatalf("Address should be defined")
	}
	if age := out.Properties["age"]; len(age.AnyOf) != 2 || age.AnyOf[1].Type != "null" {
		t.Fatalf("age: %+v", age)
	}
	if tags := out.Properties["tags"]; tags.Type != "array" || tags.Items.Type != "string" || tags.Default == nil {
		t.Fatalf("tags: %+v", tags)
	}
}

func TestJSONSchema_SelfReference(t *testing.T) {
	node := godto.NewSchema("Node")
	node.Field("next", godto.Nullable(godto.Ref(node)))
	out, err := node.JSONSchema()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, ok := out.Defs["Node"]; !ok {
		t.Fatalf("recursive schema should be defined once: %+v", out.Defs)
	}
}

func TestJSONSchema_NameClash(t *testing.T) {
	a1 := godto.NewSchema("A")
	a2 := godto.NewSchema("A")
	s := godto.NewSchema("S").
		Field("x", godto.Types(godto.Ref(a1))).
		Field("y", godto.Types(godto.Ref(a2)))
	if _, err := s.JSONSchema(); err == nil {
		t.Fatalf("two distinct schemas with one name should fail")
	}
}

// compile exports s and compiles it with an independent validator.
func compile(t *testing.T, s *godto.Schema) *sjs.Schema {
	t.Helper()
	out, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	b, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	c := sjs.NewCompiler()
	c.Draft = sjs.Draft2020
	if err := c.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		t.Fatalf("add resource: %v\n%s", err, b)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		t.Fatalf("compile: %v\n%s", err, b)
	}
	return compiled
}

// TestJSONSchema_AgreesWithConstruct checks that the exported schema accepts
// and rejects the same documents construction does.
func TestJSONSchema_AgreesWithConstruct(t *testing.T) {
	person, _ := personSchemas()
	item := godto.NewSchema("Item").Field("sku", godto.Types(godto.String()))
	person.Field("items", godto.Types(godto.ArrayOf(godto.Ref(item))), godto.Default([]any{}))
	person.Field("score", godto.Types(godto.Int(), godto.Float()), godto.Default(0))
	compiled := compile(t, person)

	docs := []string{
		`{"name": "Ada", "address": {"city": "London"}}`,
		`{"name": "Ada", "age": null, "address": {"city": "London"}, "items": [{"sku": "a"}], "score": 1.5}`,
		`{"name": "Ada", "address": {"city": "London"}, "items": []}`,
		`{"address": {"city": "London"}}`,
		`{"name": 1, "address": {"city": "London"}}`,
		`{"name": "Ada", "address": {"city": "London"}, "extra": 1}`,
		`{"name": "Ada", "address": {"city": "London", "zip": "N1"}}`,
		`{"name": "Ada", "address": {"city": "London"}, "items": [{"sku": 1}]}`,
		`{"name": "Ada", "address": "London"}`,
	}
	for _, doc := range docs {
		_, constructErr := godto.ConstructJSON(person, []byte(doc))

		var v any
		dec := json.NewDecoder(strings.NewReader(doc))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			t.Fatalf("decode %s: %v", doc, err)
		}
		schemaErr := compiled.Validate(v)

		if (constructErr == nil) != (schemaErr == nil) {
			t.Fatalf("disagreement on %s\n construct: %v\n schema: %v", doc, constructErr, schemaErr)
		}
	}
}
