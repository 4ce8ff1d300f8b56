package utils

import (
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
)

func TestNamedTypeName(t *testing.T) {
	typ := ast.NonNullListType(ast.NonNullNamedType("Int", nil), nil)
	if v := NamedTypeName(typ); v != "Int" {
		t.Errorf("unexpected: %s", v)
	}
	if v := NamedTypeName(nil); v != "" {
		t.Errorf("unexpected: %s", v)
	}
}

func TestCopyValue(t *testing.T) {
	value := &ast.Value{
		Kind: ast.ListValue,
		Children: ast.ChildValueList{
			{Value: &ast.Value{Kind: ast.IntValue, Raw: "1"}},
		},
	}
	copied := CopyValue(value)
	copied.Children[0].Value.Raw = "2"
	if value.Children[0].Value.Raw != "1" {
		t.Errorf("original value was mutated")
	}
	if copied.Kind != ast.ListValue || len(copied.Children) != 1 {
		t.Errorf("unexpected: %#v", copied)
	}
}

func TestIsInputTypeDef(t *testing.T) {
	if !IsInputTypeDef(&ast.Definition{Kind: ast.Enum}) {
		t.Error("enum should be an input type")
	}
	if IsInputTypeDef(&ast.Definition{Kind: ast.Object}) {
		t.Error("object should not be an input type")
	}
}
