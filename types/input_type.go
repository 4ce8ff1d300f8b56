// Package types provides the GraphQL input types an argument can be declared with.
package types

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// InputType is a GraphQL type usable in an input position.
type InputType interface {
	// ASTType returns the type reference as it appears in SDL.
	ASTType() *ast.Type
	// Definition returns the definition of the named type, wrappers are unwrapped.
	Definition() *ast.Definition
}

var _ InputType = (*ScalarType)(nil)
var _ InputType = (*EnumType)(nil)
var _ InputType = (*InputObjectType)(nil)
var _ InputType = (*ListType)(nil)
var _ InputType = (*NonNullType)(nil)

// ScalarType is a custom scalar.
type ScalarType struct {
	Name        string
	Description string
}

func (typ *ScalarType) ASTType() *ast.Type {
	return ast.NamedType(typ.Name, nil)
}

func (typ *ScalarType) Definition() *ast.Definition {
	return &ast.Definition{
		Kind:        ast.Scalar,
		Name:        typ.Name,
		Description: typ.Description,
	}
}

type EnumType struct {
	Name        string
	Description string
	Values      []string
}

func (typ *EnumType) ASTType() *ast.Type {
	return ast.NamedType(typ.Name, nil)
}

func (typ *EnumType) Definition() *ast.Definition {
	def := &ast.Definition{
		Kind:        ast.Enum,
		Name:        typ.Name,
		Description: typ.Description,
	}
	for _, value := range typ.Values {
		def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
			Name: value,
		})
	}
	return def
}

// InputObjectType refers to an input object by name, its fields are owned by the schema.
type InputObjectType struct {
	Name        string
	Description string
}

func (typ *InputObjectType) ASTType() *ast.Type {
	return ast.NamedType(typ.Name, nil)
}

func (typ *InputObjectType) Definition() *ast.Definition {
	return &ast.Definition{
		Kind:        ast.InputObject,
		Name:        typ.Name,
		Description: typ.Description,
	}
}

type ListType struct {
	Of InputType
}

func ListOf(typ InputType) *ListType {
	return &ListType{Of: typ}
}

func (typ *ListType) ASTType() *ast.Type {
	return ast.ListType(typ.Of.ASTType(), nil)
}

func (typ *ListType) Definition() *ast.Definition {
	return typ.Of.Definition()
}

type NonNullType struct {
	Of InputType
}

// NonNull wraps typ, a type that is already non-null is returned as is.
func NonNull(typ InputType) InputType {
	if _, ok := typ.(*NonNullType); ok {
		return typ
	}
	return &NonNullType{Of: typ}
}

func (typ *NonNullType) ASTType() *ast.Type {
	astType := typ.Of.ASTType()
	astType.NonNull = true
	return astType
}

func (typ *NonNullType) Definition() *ast.Definition {
	return typ.Of.Definition()
}

// Named unwraps list and non-null wrappers.
func Named(typ InputType) InputType {
	for {
		switch v := typ.(type) {
		case *ListType:
			typ = v.Of
		case *NonNullType:
			typ = v.Of
		default:
			return typ
		}
	}
}
