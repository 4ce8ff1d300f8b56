package utils

import "github.com/vektah/gqlparser/v2/ast"

func IsInputTypeDef(def *ast.Definition) bool {
	if def == nil {
		return false
	}
	switch def.Kind {
	case ast.Scalar, ast.Enum, ast.InputObject:
		return true
	default:
		return false
	}
}

// NamedTypeName unwraps list and non-null wrappers.
func NamedTypeName(typ *ast.Type) string {
	for typ != nil {
		if typ.NamedType != "" {
			return typ.NamedType
		}
		typ = typ.Elem
	}
	return ""
}

func CopyType(typ *ast.Type) *ast.Type {
	if typ == nil {
		return nil
	}
	return &ast.Type{
		NamedType: typ.NamedType,
		Elem:      CopyType(typ.Elem),
		NonNull:   typ.NonNull,
		Position:  typ.Position,
	}
}

func CopyValue(value *ast.Value) *ast.Value {
	if value == nil {
		return nil
	}
	copied := &ast.Value{
		Raw:      value.Raw,
		Kind:     value.Kind,
		Position: value.Position,
	}
	for _, child := range value.Children {
		copied.Children = append(copied.Children, &ast.ChildValue{
			Name:     child.Name,
			Value:    CopyValue(child.Value),
			Position: child.Position,
		})
	}
	return copied
}
