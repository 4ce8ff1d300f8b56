package manifest

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldesc/descriptors"
)

type directiveDump struct {
	Name        string                            `yaml:"name"`
	Description string                            `yaml:"description,omitempty"`
	Locations   []ast.DirectiveLocation           `yaml:"locations"`
	Repeatable  bool                              `yaml:"repeatable,omitempty"`
	Arguments   []*descriptors.ArgumentDefinition `yaml:"arguments,omitempty"`
}

// Dump writes finalized definitions as YAML, ignored arguments included.
func Dump(w io.Writer, defs []*descriptors.DirectiveTypeDefinition) error {
	dumps := make([]*directiveDump, 0, len(defs))
	for _, def := range defs {
		dumps = append(dumps, &directiveDump{
			Name:        def.Name,
			Description: def.Description,
			Locations:   def.Locations,
			Repeatable:  def.IsRepeatable,
			Arguments:   def.Arguments,
		})
	}

	b, err := yaml.Marshal(dumps)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
