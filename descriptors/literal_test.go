package descriptors

import (
	"errors"
	"math"
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldesc/types"
)

type scopeValue int

func (v scopeValue) String() string {
	if v == 1 {
		return "PRIVATE"
	}
	return "PUBLIC"
}

func TestValueToLiteral(t *testing.T) {
	enum := &types.EnumType{Name: "CacheScope", Values: []string{"PUBLIC", "PRIVATE"}}
	two := 2

	tests := []struct {
		name   string
		value  any
		typ    types.InputType
		kind   ast.ValueKind
		raw    string
		length int
	}{
		{name: "nil", value: nil, kind: ast.NullValue, raw: "null"},
		{name: "int", value: 5, typ: types.Int, kind: ast.IntValue, raw: "5"},
		{name: "uint", value: uint8(7), kind: ast.IntValue, raw: "7"},
		{name: "pointer", value: &two, kind: ast.IntValue, raw: "2"},
		{name: "nil pointer", value: (*int)(nil), kind: ast.NullValue, raw: "null"},
		{name: "float", value: 5.0, kind: ast.FloatValue, raw: "5.0"},
		{name: "fraction", value: 0.25, kind: ast.FloatValue, raw: "0.25"},
		{name: "bool", value: true, kind: ast.BooleanValue, raw: "true"},
		{name: "string", value: "PUBLIC", kind: ast.StringValue, raw: "PUBLIC"},
		{name: "enum", value: "PUBLIC", typ: types.NonNull(enum), kind: ast.EnumValue, raw: "PUBLIC"},
		{name: "enum stringer", value: scopeValue(1), typ: enum, kind: ast.EnumValue, raw: "PRIVATE"},
		{name: "list", value: []int{1, 2, 3}, kind: ast.ListValue, length: 3},
		{name: "nil list", value: []int(nil), kind: ast.NullValue, raw: "null"},
		{name: "map", value: map[string]any{"b": 1, "a": "x"}, kind: ast.ObjectValue, length: 2},
		{name: "struct", value: struct{ MaxAge int }{MaxAge: 1}, kind: ast.ObjectValue, length: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			literal, err := ValueToLiteral(tt.value, tt.typ)
			if err != nil {
				t.Fatal(err)
			}
			if literal.Kind != tt.kind {
				t.Errorf("unexpected kind: %v", literal.Kind)
			}
			if literal.Raw != tt.raw {
				t.Errorf("expected %s, got %s", tt.raw, literal.Raw)
			}
			if len(literal.Children) != tt.length {
				t.Errorf("unexpected children: %d", len(literal.Children))
			}
		})
	}
}

func TestValueToLiteral_Children(t *testing.T) {
	enum := &types.EnumType{Name: "CacheScope", Values: []string{"PUBLIC"}}

	literal, err := ValueToLiteral([]string{"PUBLIC"}, types.ListOf(types.NonNull(enum)))
	if err != nil {
		t.Fatal(err)
	}
	if literal.Children[0].Value.Kind != ast.EnumValue {
		t.Errorf("list elements should follow the element type")
	}

	literal, err = ValueToLiteral(map[string]any{"b": 1, "a": "x"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if literal.Children[0].Name != "a" || literal.Children[1].Name != "b" {
		t.Errorf("object fields should be sorted")
	}

	literal, err = ValueToLiteral(struct{ MaxAge int }{MaxAge: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if literal.Children[0].Name != "maxAge" {
		t.Errorf("unexpected field name: %s", literal.Children[0].Name)
	}
}

func TestValueToLiteral_Unsupported(t *testing.T) {
	for _, value := range []any{math.NaN(), math.Inf(1), map[int]int{1: 1}, make(chan int)} {
		_, err := ValueToLiteral(value, nil)
		if !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("%T: unexpected error: %v", value, err)
		}
	}
}

func TestValueToLiteral_IntRange(t *testing.T) {
	tests := []struct {
		name  string
		value any
		typ   types.InputType
		raw   string
	}{
		{"max", int64(math.MaxInt32), types.NonNull(types.Int), "2147483647"},
		{"min", int64(math.MinInt32), types.Int, "-2147483648"},
		{"untyped", int64(3000000000), nil, "3000000000"},
		{"custom scalar", uint64(3000000000), &types.ScalarType{Name: "Long"}, "3000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			literal, err := ValueToLiteral(tt.value, tt.typ)
			if err != nil {
				t.Fatal(err)
			}
			if literal.Raw != tt.raw {
				t.Errorf("expected %s, got %s", tt.raw, literal.Raw)
			}
		})
	}

	for _, value := range []any{int64(3000000000), int64(math.MinInt32 - 1), uint32(math.MaxInt32 + 1), []int64{1, 1 << 40}} {
		typ := types.NonNull(types.Int)
		if _, ok := value.([]int64); ok {
			typ = types.ListOf(typ)
		}
		_, err := ValueToLiteral(value, typ)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%v: unexpected error: %v", value, err)
		}
	}
}

func TestParseBoolLiteral(t *testing.T) {
	for source, expect := range map[string]bool{"true": true, "false": false, " true ": true} {
		b, err := ParseBoolLiteral(source)
		if err != nil {
			t.Fatal(err)
		}
		if b != expect {
			t.Errorf("%q: expected %v, got %v", source, expect, b)
		}
	}

	for _, source := range []string{"", "ture", "TRUE", "1", `"true"`} {
		_, err := ParseBoolLiteral(source)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%q: unexpected error: %v", source, err)
		}
	}
}

func TestParseValueLiteral(t *testing.T) {
	value, err := ParseValueLiteral(`{scope: PUBLIC, tags: ["a"]}`)
	if err != nil {
		t.Fatal(err)
	}
	if value.Kind != ast.ObjectValue || len(value.Children) != 2 {
		t.Errorf("unexpected value: %#v", value)
	}

	for _, source := range []string{"", "$var", "[1, $var]", "1) { x"} {
		_, err := ParseValueLiteral(source)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%q: unexpected error: %v", source, err)
		}
	}
}

func TestParseTypeReference(t *testing.T) {
	typ, err := ParseTypeReference("[Int!]!")
	if err != nil {
		t.Fatal(err)
	}
	if typ.String() != "[Int!]!" {
		t.Errorf("unexpected type: %s", typ.String())
	}

	for _, source := range []string{"", "[Int", "Int = 1", "Int) on FIELD directive @x(v: Int"} {
		_, err := ParseTypeReference(source)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%q: unexpected error: %v", source, err)
		}
	}
}
