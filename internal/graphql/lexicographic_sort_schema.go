package graphql

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
)

// LexicographicSortArguments sorts argument definitions and the directives used on them by name.
func LexicographicSortArguments(argDefs ast.ArgumentDefinitionList) {
	sortArgumentList := func(args ast.ArgumentList) {
		sort.SliceStable(args, func(i, j int) bool {
			return args[i].Name < args[j].Name
		})
	}
	sortDirectiveList := func(directives ast.DirectiveList) {
		sort.SliceStable(directives, func(i, j int) bool {
			return directives[i].Name < directives[j].Name
		})

		for _, directive := range directives {
			sortArgumentList(directive.Arguments)
		}
	}

	sort.SliceStable(argDefs, func(i, j int) bool {
		return argDefs[i].Name < argDefs[j].Name
	})
	for _, argDef := range argDefs {
		sortDirectiveList(argDef.Directives)
	}
}

// LexicographicSortDirectives sorts directive definitions and their arguments by name.
func LexicographicSortDirectives(defs ast.DirectiveDefinitionList) {
	sort.SliceStable(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	for _, def := range defs {
		LexicographicSortArguments(def.Arguments)
	}
}
