package descriptors

import (
	"fmt"
	"io"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vvakame/gqldesc/internal/graphql"
	"github.com/vvakame/gqldesc/internal/log"
	"github.com/vvakame/gqldesc/internal/utils"
	"github.com/vvakame/gqldesc/types"
)

// for formatter
var compiledPos = &ast.Position{
	Src: &ast.Source{
		Name: "gqldesc",
	},
}

type CompileOptions struct {
	// SortArguments orders arguments by name instead of declaration order.
	SortArguments bool
}

// CompileArgument converts a finalized definition into its SDL node.
func CompileArgument(ctx *DescriptorContext, def *ArgumentDefinition) (*ast.ArgumentDefinition, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: definition is nil", ErrNilReference)
	}
	if def.SyntaxNode != nil {
		return copyArgumentDefinition(def.SyntaxNode), nil
	}
	if def.Name == "" {
		return nil, fmt.Errorf("%w: argument name must not be empty", ErrInvalidArgument)
	}

	astType, inputType, err := resolveArgumentType(ctx, def)
	if err != nil {
		return nil, err
	}

	argDef := &ast.ArgumentDefinition{
		Description: def.Description,
		Name:        def.Name,
		Type:        astType,
		Position:    compiledPos,
	}

	switch def.DefaultValue.Kind {
	case DefaultValueSyntax:
		argDef.DefaultValue = utils.CopyValue(def.DefaultValue.Syntax)
	case DefaultValueRuntime:
		literal, err := ValueToLiteral(def.DefaultValue.Runtime, inputType)
		if err != nil {
			return nil, fmt.Errorf("default value of argument %s: %w", def.Name, err)
		}
		argDef.DefaultValue = literal
	}

	if def.DeprecationReason != nil {
		argDef.Directives = append(argDef.Directives, graphql.DeprecatedDirective(*def.DeprecationReason, compiledPos))
	}

	return argDef, nil
}

func resolveArgumentType(ctx *DescriptorContext, def *ArgumentDefinition) (*ast.Type, types.InputType, error) {
	if def.Type.IsZero() {
		return nil, nil, gqlerror.Errorf("The type of argument %s is not specified.", def.Name)
	}

	inputType, err := ctx.TypeInspector.ResolveInputType(def.Type)
	if def.Type.Kind == TypeReferenceSyntax {
		// unresolvable named types are left to the schema the directive ends up in
		if err != nil {
			ctx.Logger.V(log.TraceLevel).Info("type is not resolvable", "argument", def.Name, "type", def.Type.String(), "error", err.Error())
			inputType = nil
		}
		return utils.CopyType(def.Type.Syntax), inputType, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("type of argument %s: %w", def.Name, err)
	}

	return inputType.ASTType(), inputType, nil
}

// CompileDirective converts a finalized directive into its SDL node. Ignored arguments are dropped.
func CompileDirective(ctx *DescriptorContext, def *DirectiveTypeDefinition, opts *CompileOptions) (*ast.DirectiveDefinition, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: definition is nil", ErrNilReference)
	}
	if opts == nil {
		opts = &CompileOptions{}
	}
	if def.Name == "" {
		return nil, fmt.Errorf("%w: directive name must not be empty", ErrInvalidArgument)
	}
	if graphql.IsSpecifiedDirective(def.Name) {
		return nil, gqlerror.Errorf("Directive \"@%s\" is a specified directive and can not be redeclared.", def.Name)
	}
	if len(def.Locations) == 0 {
		return nil, gqlerror.Errorf("Directive \"@%s\" must have at least one location.", def.Name)
	}

	dirDef := &ast.DirectiveDefinition{
		Description:  def.Description,
		Name:         def.Name,
		Locations:    append([]ast.DirectiveLocation(nil), def.Locations...),
		IsRepeatable: def.IsRepeatable,
		Position:     compiledPos,
	}

	for _, argDef := range def.Arguments {
		if argDef.Ignore {
			ctx.Logger.V(log.TraceLevel).Info("skip ignored argument", "directive", def.Name, "argument", argDef.Name)
			continue
		}
		compiled, err := CompileArgument(ctx, argDef)
		if err != nil {
			return nil, fmt.Errorf("directive @%s: %w", def.Name, err)
		}
		if dirDef.Arguments.ForName(compiled.Name) != nil {
			return nil, gqlerror.Errorf("Argument \"@%s(%s:)\" can only be defined once.", def.Name, compiled.Name)
		}
		dirDef.Arguments = append(dirDef.Arguments, compiled)
	}

	if opts.SortArguments {
		graphql.LexicographicSortArguments(dirDef.Arguments)
	}

	return dirDef, nil
}

// FormatDirectives prints directive definitions as SDL.
func FormatDirectives(w io.Writer, defs ast.DirectiveDefinitionList) {
	formatter.NewFormatter(w).FormatSchemaDocument(&ast.SchemaDocument{
		Directives: defs,
	})
}

func copyArgumentDefinition(argDef *ast.ArgumentDefinition) *ast.ArgumentDefinition {
	copied := *argDef
	copied.Type = utils.CopyType(argDef.Type)
	copied.DefaultValue = utils.CopyValue(argDef.DefaultValue)
	copied.Directives = append(ast.DirectiveList(nil), argDef.Directives...)
	return &copied
}
