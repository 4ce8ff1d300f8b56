package graphql

import "github.com/vektah/gqlparser/v2/ast"

// for formatter
var blankBuiltInPos = &ast.Position{
	Src: &ast.Source{
		BuiltIn: true,
	},
}

// DeprecationDefaultReason is used when an element is deprecated without a reason.
const DeprecationDefaultReason = "No longer supported"

// Used to declare element of a GraphQL schema as deprecated.
var GraphQLDeprecatedDirective = &ast.DirectiveDefinition{
	Description: "Marks an element of a GraphQL schema as no longer supported.",
	Name:        "deprecated",
	Arguments: ast.ArgumentDefinitionList{
		&ast.ArgumentDefinition{
			Description: "Explains why this element was deprecated, usually also including a suggestion for how to access supported similar data.",
			Name:        "reason",
			DefaultValue: &ast.Value{
				Raw:  DeprecationDefaultReason,
				Kind: ast.StringValue,
			},
			Type: &ast.Type{
				NamedType: "String",
			},
		},
	},
	Locations: []ast.DirectiveLocation{
		ast.LocationFieldDefinition,
		ast.LocationArgumentDefinition,
		ast.LocationInputFieldDefinition,
		ast.LocationEnumValue,
	},
	Position: blankBuiltInPos,
}

// The full list of specified directive names.
var specifiedDirectiveNames = []string{
	"include",
	"skip",
	GraphQLDeprecatedDirective.Name,
	"specifiedBy",
	"oneOf",
}

func IsSpecifiedDirective(name string) bool {
	for _, specified := range specifiedDirectiveNames {
		if specified == name {
			return true
		}
	}
	return false
}

// DeprecatedDirective builds a @deprecated usage.
// The reason argument is omitted when it equals DeprecationDefaultReason.
func DeprecatedDirective(reason string, pos *ast.Position) *ast.Directive {
	directive := &ast.Directive{
		Name:       GraphQLDeprecatedDirective.Name,
		Definition: GraphQLDeprecatedDirective,
		Location:   ast.LocationArgumentDefinition,
		Position:   pos,
	}
	if reason != DeprecationDefaultReason {
		directive.Arguments = ast.ArgumentList{
			&ast.Argument{
				Name: "reason",
				Value: &ast.Value{
					Raw:      reason,
					Kind:     ast.StringValue,
					Position: pos,
				},
				Position: pos,
			},
		}
	}
	return directive
}
