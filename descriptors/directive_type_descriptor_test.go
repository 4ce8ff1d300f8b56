package descriptors

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldesc/types"
)

func TestNewDirectiveTypeDescriptor(t *testing.T) {
	dc := newTestContext(t, nil)

	_, err := NewDirectiveTypeDescriptor(dc, "")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unexpected error: %v", err)
	}

	d, err := NewDirectiveTypeDescriptor(dc, "auth")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Name(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unexpected error: %v", err)
	}

	first, err := d.Argument("role")
	if err != nil {
		t.Fatal(err)
	}
	second, err := d.Argument("role")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Argument should return the existing descriptor")
	}
	if _, err := d.Argument(""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := d.ArgumentFrom(nil); !errors.Is(err, ErrNilReference) {
		t.Errorf("unexpected error: %v", err)
	}

	first.Type(types.NonNull(types.String))
	def, err := d.Repeatable().Location(ast.LocationObject).CreateDefinition()
	if err != nil {
		t.Fatal(err)
	}
	if !def.IsRepeatable || len(def.Locations) != 1 || len(def.Arguments) != 1 {
		t.Errorf("unexpected definition: %#v", def)
	}
}

func TestNewDirectiveTypeDescriptorFromStruct(t *testing.T) {
	dc := newTestContext(t, nil)

	d, err := NewDirectiveTypeDescriptorFromStruct(dc, depthLimit{})
	if err != nil {
		t.Fatal(err)
	}
	arg, err := d.Argument("maxDepth")
	if err != nil {
		t.Fatal(err)
	}
	arg.Description("overridden")

	def, err := d.CreateDefinition()
	if err != nil {
		t.Fatal(err)
	}
	if def.Name != "depthLimit" {
		t.Errorf("unexpected name: %s", def.Name)
	}
	if len(def.Arguments) != 5 {
		t.Fatalf("unexpected arguments: %d", len(def.Arguments))
	}
	for _, argDef := range def.Arguments {
		if !argDef.AttributesApplied {
			t.Errorf("%s: attributes should be applied", argDef.Name)
		}
	}
	if def.Arguments[0].Description != "overridden" {
		t.Errorf("unexpected description: %s", def.Arguments[0].Description)
	}

	_, err = NewDirectiveTypeDescriptorFromStruct(dc, "string")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestArgumentDefinition_Marshal(t *testing.T) {
	dc := newTestContext(t, nil)

	d, err := NewArgumentDescriptorFromMember(dc, mustMember(t, depthLimit{}, "MaxDepth"))
	if err != nil {
		t.Fatal(err)
	}
	def, err := d.CreateDefinition()
	if err != nil {
		t.Fatal(err)
	}

	b, err := yaml.Marshal(def)
	if err != nil {
		t.Fatal(err)
	}
	for _, expect := range []string{"name: maxDepth", "deprecationReason: use maxNodes", "member: depthLimit.MaxDepth"} {
		if !strings.Contains(string(b), expect) {
			t.Errorf("%q is missing in:\n%s", expect, string(b))
		}
	}

	b, err = json.Marshal(def)
	if err != nil {
		t.Fatal(err)
	}
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		t.Fatal(err)
	}
	if obj["defaultValue"] != "5" || obj["type"] != "Runtime(int)" {
		t.Errorf("unexpected json: %s", string(b))
	}
}
