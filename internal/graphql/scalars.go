package graphql

import "github.com/vektah/gqlparser/v2/ast"

var GraphQLInt = &ast.Definition{
	Kind:        ast.Scalar,
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values. Int can represent values between -(2^31) and 2^31 - 1.",
	Name:        "Int",
	Position:    blankBuiltInPos,
	BuiltIn:     true,
}

var GraphQLFloat = &ast.Definition{
	Kind:        ast.Scalar,
	Description: "The `Float` scalar type represents signed double-precision fractional values as specified by [IEEE 754](https://en.wikipedia.org/wiki/IEEE_floating_point).",
	Name:        "Float",
	Position:    blankBuiltInPos,
	BuiltIn:     true,
}

var GraphQLString = &ast.Definition{
	Kind:        ast.Scalar,
	Description: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
	Name:        "String",
	Position:    blankBuiltInPos,
	BuiltIn:     true,
}

var GraphQLBoolean = &ast.Definition{
	Kind:        ast.Scalar,
	Description: "The `Boolean` scalar type represents `true` or `false`.",
	Name:        "Boolean",
	Position:    blankBuiltInPos,
	BuiltIn:     true,
}

var GraphQLID = &ast.Definition{
	Kind:        ast.Scalar,
	Description: "The `ID` scalar type represents a unique identifier. When expected as an input type, any string or integer input value will be accepted as an ID.",
	Name:        "ID",
	Position:    blankBuiltInPos,
	BuiltIn:     true,
}

var SpecifiedScalarTypes = ast.DefinitionList{
	GraphQLString,
	GraphQLInt,
	GraphQLFloat,
	GraphQLBoolean,
	GraphQLID,
}

// LookupSpecifiedScalar returns the built-in scalar named typeName.
func LookupSpecifiedScalar(typeName string) (*ast.Definition, bool) {
	def := SpecifiedScalarTypes.ForName(typeName)
	return def, def != nil
}
