// Package manifest reads directive declarations from YAML.
//
//	directives:
//	  - name: cacheControl
//	    locations: [FIELD_DEFINITION, OBJECT]
//	    arguments:
//	      - name: maxAge
//	        type: Int!
//	        default: "30"
package manifest

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldesc/descriptors"
)

type Manifest struct {
	Directives []*DirectiveManifest `yaml:"directives"`
}

type DirectiveManifest struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	Locations   []string            `yaml:"locations"`
	Repeatable  bool                `yaml:"repeatable"`
	Arguments   []*ArgumentManifest `yaml:"arguments"`
}

type ArgumentManifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Type is a GraphQL type reference, e.g. [String!]!
	Type string `yaml:"type"`
	// Default is a GraphQL literal, e.g. PUBLIC or "text".
	Default *string `yaml:"default"`

	Deprecated *string `yaml:"deprecated"`
	Ignore     bool    `yaml:"ignore"`
}

var directiveLocations = []ast.DirectiveLocation{
	ast.LocationQuery,
	ast.LocationMutation,
	ast.LocationSubscription,
	ast.LocationField,
	ast.LocationFragmentDefinition,
	ast.LocationFragmentSpread,
	ast.LocationInlineFragment,
	ast.LocationVariableDefinition,
	ast.LocationSchema,
	ast.LocationScalar,
	ast.LocationObject,
	ast.LocationFieldDefinition,
	ast.LocationArgumentDefinition,
	ast.LocationInterface,
	ast.LocationUnion,
	ast.LocationEnum,
	ast.LocationEnumValue,
	ast.LocationInputObject,
	ast.LocationInputFieldDefinition,
}

func Load(r io.Reader) (*Manifest, error) {
	m := &Manifest{}
	err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(m)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func LoadFile(filePath string) (*Manifest, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return m, nil
}

// Definitions finalizes every directive of the manifest.
func (m *Manifest) Definitions(dc *descriptors.DescriptorContext) ([]*descriptors.DirectiveTypeDefinition, error) {
	defs := make([]*descriptors.DirectiveTypeDefinition, 0, len(m.Directives))
	for i, directive := range m.Directives {
		def, err := directive.definition(dc)
		if err != nil {
			return nil, fmt.Errorf("directives[%d]: %w", i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Build compiles every directive of the manifest.
func (m *Manifest) Build(dc *descriptors.DescriptorContext, opts *descriptors.CompileOptions) (ast.DirectiveDefinitionList, error) {
	defs, err := m.Definitions(dc)
	if err != nil {
		return nil, err
	}

	dirDefs := make(ast.DirectiveDefinitionList, 0, len(defs))
	for _, def := range defs {
		dirDef, err := descriptors.CompileDirective(dc, def, opts)
		if err != nil {
			return nil, err
		}
		dirDefs = append(dirDefs, dirDef)
	}
	return dirDefs, nil
}

func (dm *DirectiveManifest) definition(dc *descriptors.DescriptorContext) (*descriptors.DirectiveTypeDefinition, error) {
	d, err := descriptors.NewDirectiveTypeDescriptor(dc, dm.Name)
	if err != nil {
		return nil, err
	}
	d.Description(dm.Description)
	if dm.Repeatable {
		d.Repeatable()
	}

	for _, location := range dm.Locations {
		dirLoc, err := parseLocation(location)
		if err != nil {
			return nil, err
		}
		d.Location(dirLoc)
	}

	for i, argument := range dm.Arguments {
		argDef, err := argument.definition()
		if err != nil {
			return nil, fmt.Errorf("@%s arguments[%d]: %w", dm.Name, i, err)
		}
		_, err = d.ArgumentFrom(argDef)
		if err != nil {
			return nil, err
		}
	}

	return d.CreateDefinition()
}

func (am *ArgumentManifest) definition() (*descriptors.ArgumentDefinition, error) {
	def := &descriptors.ArgumentDefinition{
		Name:              am.Name,
		Description:       am.Description,
		DeprecationReason: am.Deprecated,
		Ignore:            am.Ignore,
	}

	if am.Type != "" {
		typ, err := descriptors.ParseTypeReference(am.Type)
		if err != nil {
			return nil, err
		}
		def.Type = descriptors.SyntaxType(typ)
	}

	if am.Default != nil {
		value, err := descriptors.ParseValueLiteral(*am.Default)
		if err != nil {
			return nil, err
		}
		def.DefaultValue = descriptors.SyntaxDefault(value)
	}

	return def, nil
}

func parseLocation(location string) (ast.DirectiveLocation, error) {
	for _, dirLoc := range directiveLocations {
		if string(dirLoc) == location {
			return dirLoc, nil
		}
	}
	return "", fmt.Errorf("%w: unknown directive location %s", descriptors.ErrInvalidArgument, location)
}
