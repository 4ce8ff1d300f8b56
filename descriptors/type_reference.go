package descriptors

import (
	"reflect"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldesc/types"
)

type TypeReferenceKind int

const (
	TypeReferenceNone TypeReferenceKind = iota
	// TypeReferenceStatic refers to an input type by its Go marker type.
	TypeReferenceStatic
	// TypeReferenceSchema is bound to a constructed input type.
	TypeReferenceSchema
	// TypeReferenceSyntax is a parsed, not yet resolved, type.
	TypeReferenceSyntax
	// TypeReferenceRuntime is a Go type resolved later by the TypeInspector.
	TypeReferenceRuntime
)

func (kind TypeReferenceKind) String() string {
	switch kind {
	case TypeReferenceNone:
		return "None"
	case TypeReferenceStatic:
		return "Static"
	case TypeReferenceSchema:
		return "Schema"
	case TypeReferenceSyntax:
		return "Syntax"
	case TypeReferenceRuntime:
		return "Runtime"
	default:
		return "Unknown"
	}
}

// TypeReference holds exactly one representation of an argument type, selected by Kind.
type TypeReference struct {
	Kind    TypeReferenceKind
	Type    types.InputType // TypeReferenceSchema
	Syntax  *ast.Type       // TypeReferenceSyntax
	Runtime reflect.Type    // TypeReferenceStatic, TypeReferenceRuntime
}

// StaticType refers to the input type T, e.g. StaticType[types.IntType]().
func StaticType[T types.InputType]() TypeReference {
	return TypeReference{
		Kind:    TypeReferenceStatic,
		Runtime: reflect.TypeOf((*T)(nil)).Elem(),
	}
}

func SchemaType(typ types.InputType) TypeReference {
	if typ == nil {
		return TypeReference{}
	}
	return TypeReference{Kind: TypeReferenceSchema, Type: typ}
}

func SyntaxType(typ *ast.Type) TypeReference {
	if typ == nil {
		return TypeReference{}
	}
	return TypeReference{Kind: TypeReferenceSyntax, Syntax: typ}
}

func RuntimeType(rt reflect.Type) TypeReference {
	if rt == nil {
		return TypeReference{}
	}
	return TypeReference{Kind: TypeReferenceRuntime, Runtime: rt}
}

func (ref TypeReference) IsZero() bool {
	return ref.Kind == TypeReferenceNone
}

func (ref TypeReference) String() string {
	switch ref.Kind {
	case TypeReferenceStatic, TypeReferenceRuntime:
		return ref.Kind.String() + "(" + ref.Runtime.String() + ")"
	case TypeReferenceSchema:
		return ref.Type.ASTType().String()
	case TypeReferenceSyntax:
		return ref.Syntax.String()
	default:
		return ""
	}
}
