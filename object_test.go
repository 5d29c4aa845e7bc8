package godto_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/reoring/godto"
)

func personSchemas() (person, address *godto.Schema) {
	address = godto.NewSchema("Address").
		Field("city", godto.Types(godto.String()))
	person = godto.NewSchema("Person").
		Field("name", godto.Types(godto.String())).
		Field("age", godto.Nullable(godto.Int())).
		Field("address", godto.Types(godto.Ref(address)))
	return person, address
}

func TestConstruct_PersonExample(t *testing.T) {
	person, address := personSchemas()
	o, err := godto.Construct(person, map[string]any{
		"name":    "Ada",
		"address": map[string]any{"city": "London"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if age, ok := o.Get("age"); !ok || age != nil {
		t.Fatalf("age should be null: %#v", age)
	}
	if !o.Initialized("age") {
		t.Fatalf("nullable field should be initialized with null")
	}
	addr, ok := godto.Lookup[*godto.Object](o, "address")
	if !ok || addr.Schema() != address {
		t.Fatalf("address should be an Address object: %#v", addr)
	}

	want := map[string]any{"name": "Ada", "age": nil, "address": map[string]any{"city": "London"}}
	if got := o.ToPlainObject(); !reflect.DeepEqual(got, want) {
		t.Fatalf("plain mismatch\n got=%#v\nwant=%#v", got, want)
	}
}

func TestConstruct_UnknownProperties(t *testing.T) {
	person, _ := personSchemas()
	_, err := godto.Construct(person, map[string]any{
		"name":    "Ada",
		"address": map[string]any{"city": "London"},
		"extra":   1,
		"another": true,
	})
	e, ok := godto.AsError(err)
	if !ok || e.Code != godto.CodeUnknownProperties {
		t.Fatalf("expected unknown_properties, got %v", err)
	}
	if e.Schema != "Person" || !reflect.DeepEqual(e.Keys, []string{"another", "extra"}) {
		t.Fatalf("unexpected report: %+v", e)
	}
	if want := "unknown_properties at /: properties `another`, `extra` not found on Person"; err.Error() != want {
		t.Fatalf("message:\n got=%s\nwant=%s", err.Error(), want)
	}

	person.UnknownStrip()
	o, err := godto.Construct(person, map[string]any{"name": "Ada", "address": map[string]any{"city": "London"}, "extra": 1})
	if err != nil {
		t.Fatalf("strip mode should drop extra keys: %v", err)
	}
	if o.Has("extra") {
		t.Fatalf("extra key should not be a field")
	}
}

func TestConstruct_NestedUnknownPropertiesPath(t *testing.T) {
	person, _ := personSchemas()
	_, err := godto.Construct(person, map[string]any{"name": "Ada", "address": map[string]any{"city": "London", "zip": "N1"}})
	e, ok := godto.AsError(err)
	if !ok || e.Code != godto.CodeUnknownProperties || e.Schema != "Address" || e.Path != "/address" {
		t.Fatalf("unexpected error: %+v", e)
	}
}

func TestConstruct_Uninitialized(t *testing.T) {
	person, _ := personSchemas()
	_, err := godto.Construct(person, map[string]any{"address": map[string]any{"city": "London"}})
	e, ok := godto.AsError(err)
	if !ok || e.Code != godto.CodeUninitialized || e.Path != "/name" || e.FQN() != "Person.name" {
		t.Fatalf("expected uninitialized Person.name, got %v", err)
	}
	if want := "uninitialized at /name: non-nullable property Person.name has not been initialized"; err.Error() != want {
		t.Fatalf("message: %s", err.Error())
	}
	if !errors.Is(err, godto.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation")
	}
}

func TestConstruct_InvalidType(t *testing.T) {
	person, _ := personSchemas()
	cases := []struct {
		name  string
		input map[string]any
		path  string
		got   string
		msg   string
	}{
		{
			name:  "scalar",
			input: map[string]any{"name": 42, "address": map[string]any{"city": "London"}},
			path:  "/name",
			got:   "42",
			msg:   "invalid_type at /name: invalid type: expected Person.name to be of type string, instead got value `42`",
		},
		{
			name:  "null for non-nullable",
			input: map[string]any{"name": nil, "address": map[string]any{"city": "London"}},
			path:  "/name",
			got:   "null",
		},
		{
			name:  "union",
			input: map[string]any{"name": "Ada", "age": "old", "address": map[string]any{"city": "London"}},
			path:  "/age",
			got:   "old",
			msg:   "invalid_type at /age: invalid type: expected Person.age to be of type int, null, instead got value `old`",
		},
		{
			name:  "nested",
			input: map[string]any{"name": "Ada", "address": map[string]any{"city": []any{"x"}}},
			path:  "/address/city",
			got:   "array",
		},
		{
			name:  "scalar for object",
			input: map[string]any{"name": "Ada", "address": "London"},
			path:  "/address",
			got:   "London",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := godto.Construct(person, c.input)
			e, ok := godto.AsError(err)
			if !ok || e.Code != godto.CodeInvalidType {
				t.Fatalf("expected invalid_type, got %v", err)
			}
			if e.Path != c.path || e.Got != c.got {
				t.Fatalf("unexpected report: %+v", e)
			}
			if c.msg != "" && err.Error() != c.msg {
				t.Fatalf("message:\n got=%s\nwant=%s", err.Error(), c.msg)
			}
		})
	}
}

func TestConstruct_NullableAcceptsNullWithOtherTypes(t *testing.T) {
	s := godto.NewSchema("S").Field("v", godto.Nullable(godto.Int(), godto.String(), godto.ArrayOf(godto.Bool())))
	if _, err := godto.Construct(s, map[string]any{"v": nil}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestConstruct_CollectionOfObjects(t *testing.T) {
	item := godto.NewSchema("LineItem").
		Field("sku", godto.Types(godto.String())).
		Field("qty", godto.Types(godto.Int()))
	order := godto.NewSchema("Order").Field("items", godto.Types(godto.ArrayOf(godto.Ref(item))))

	in := []any{
		map[string]any{"sku": "a", "qty": 1},
		map[string]any{"sku": "b", "qty": 2},
	}
	o, err := godto.Construct(order, map[string]any{"items": in})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	col, ok := godto.Lookup[*godto.Collection](o, "items")
	if !ok || col.Len() != 2 {
		t.Fatalf("expected a collection of two: %#v", col)
	}
	for i, v := range col.All() {
		obj, ok := v.(*godto.Object)
		if !ok || obj.Schema() != item {
			t.Fatalf("item %d is not a LineItem: %#v", i, v)
		}
	}
	if got := o.ToPlainObject()["items"]; !reflect.DeepEqual(got, in) {
		t.Fatalf("collection should flatten back to input\n got=%#v\nwant=%#v", got, in)
	}

	_, err = godto.Construct(order, map[string]any{"items": []any{
		map[string]any{"sku": "a", "qty": 1},
		map[string]any{"sku": "b", "qty": 2},
		map[string]any{"qty": 3},
	}})
	e, ok := godto.AsError(err)
	if !ok || e.Code != godto.CodeUninitialized || e.Path != "/items/2/sku" || e.FQN() != "LineItem.sku" {
		t.Fatalf("expected uninitialized at /items/2/sku, got %v", err)
	}
}

func TestConstruct_Defaults(t *testing.T) {
	s := godto.NewSchema("Settings").
		Field("theme", godto.Types(godto.String()), godto.Default("dark")).
		Field("meta", godto.Types(godto.Array()), godto.Default(map[string]any{"k": "v"}))

	a, err := godto.Construct(s, map[string]any{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v, _ := a.Get("theme"); v != "dark" {
		t.Fatalf("default not applied: %v", v)
	}
	meta, _ := godto.Lookup[map[string]any](a, "meta")
	meta["k"] = "changed"

	b := godto.MustConstruct(s, nil)
	if m, _ := godto.Lookup[map[string]any](b, "meta"); m["k"] != "v" {
		t.Fatalf("defaults must not be shared between objects: %v", m)
	}

	bad := godto.NewSchema("Bad").Field("n", godto.Types(godto.Int()), godto.Default("x"))
	if _, err := godto.Construct(bad, nil); err == nil {
		t.Fatalf("a default of the wrong type should be rejected")
	}
}

func TestFill_AtomicAndKeepsInitialized(t *testing.T) {
	person, _ := personSchemas()
	o := godto.MustConstruct(person, map[string]any{"name": "Ada", "age": 36, "address": map[string]any{"city": "London"}})

	if err := o.Fill(map[string]any{"name": "Bob", "age": "x"}); err == nil {
		t.Fatalf("expected invalid_type")
	}
	if v, _ := o.Get("name"); v != "Ada" {
		t.Fatalf("failed fill must leave the object unchanged, name=%v", v)
	}

	if err := o.Fill(map[string]any{"age": 37}); err != nil {
		t.Fatalf("refill of one field should keep the others: %v", err)
	}
	if v, _ := o.Get("name"); v != "Ada" {
		t.Fatalf("name lost: %v", v)
	}
	if v, _ := o.Get("age"); v != 37 {
		t.Fatalf("age not updated: %v", v)
	}
}

func TestConstruct_SelfReference(t *testing.T) {
	node := godto.NewSchema("Node")
	node.Field("value", godto.Types(godto.Int())).
		Field("next", godto.Nullable(godto.Ref(node)))

	o, err := godto.Construct(node, map[string]any{
		"value": 1,
		"next":  map[string]any{"value": 2, "next": map[string]any{"value": 3}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := map[string]any{"value": 1, "next": map[string]any{"value": 2, "next": map[string]any{"value": 3, "next": nil}}}
	if got := o.ToPlainObject(); !reflect.DeepEqual(got, want) {
		t.Fatalf("plain mismatch\n got=%#v\nwant=%#v", got, want)
	}
}

func TestMustConstruct_Panics(t *testing.T) {
	person, _ := personSchemas()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	godto.MustConstruct(person, nil)
}
