package types

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldesc/internal/graphql"
)

// Marker types of the specified scalars.
// They can be used as instances or as type parameters, e.g. descriptors.StaticType[types.IntType]().
type (
	IntType     struct{}
	FloatType   struct{}
	StringType  struct{}
	BooleanType struct{}
	IDType      struct{}
)

var (
	Int     InputType = IntType{}
	Float   InputType = FloatType{}
	String  InputType = StringType{}
	Boolean InputType = BooleanType{}
	ID      InputType = IDType{}
)

func (IntType) ASTType() *ast.Type              { return ast.NamedType(graphql.GraphQLInt.Name, nil) }
func (IntType) Definition() *ast.Definition     { return graphql.GraphQLInt }
func (FloatType) ASTType() *ast.Type            { return ast.NamedType(graphql.GraphQLFloat.Name, nil) }
func (FloatType) Definition() *ast.Definition   { return graphql.GraphQLFloat }
func (StringType) ASTType() *ast.Type           { return ast.NamedType(graphql.GraphQLString.Name, nil) }
func (StringType) Definition() *ast.Definition  { return graphql.GraphQLString }
func (BooleanType) ASTType() *ast.Type          { return ast.NamedType(graphql.GraphQLBoolean.Name, nil) }
func (BooleanType) Definition() *ast.Definition { return graphql.GraphQLBoolean }
func (IDType) ASTType() *ast.Type               { return ast.NamedType(graphql.GraphQLID.Name, nil) }
func (IDType) Definition() *ast.Definition      { return graphql.GraphQLID }

// Scalar returns the specified scalar named name, or a custom scalar.
func Scalar(name string) InputType {
	switch name {
	case graphql.GraphQLInt.Name:
		return Int
	case graphql.GraphQLFloat.Name:
		return Float
	case graphql.GraphQLString.Name:
		return String
	case graphql.GraphQLBoolean.Name:
		return Boolean
	case graphql.GraphQLID.Name:
		return ID
	}
	return &ScalarType{Name: name}
}

func IsSpecifiedScalar(typ InputType) bool {
	def := Named(typ).Definition()
	if def == nil {
		return false
	}
	_, ok := graphql.LookupSpecifiedScalar(def.Name)
	return ok
}
