package descriptors

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
	"github.com/vektah/gqlparser/v2/ast"
)

var _ json.Marshaler = (*ArgumentDefinition)(nil)
var _ yaml.InterfaceMarshaler = (*ArgumentDefinition)(nil)

// ArgumentDefinition describes one directive argument.
// It is owned by a single ArgumentDescriptor until finalized and read-only afterwards.
type ArgumentDefinition struct {
	Name         string
	Description  string
	Type         TypeReference
	DefaultValue DefaultValue

	// nil means not deprecated, an empty reason is still deprecated.
	DeprecationReason *string
	// Ignore excludes the argument from compiled schemas, other fields are kept.
	Ignore bool

	// Member is the struct field the argument is derived from, if any.
	Member            *Member
	AttributesApplied bool

	// SyntaxNode replaces the compiled syntax when set.
	SyntaxNode *ast.ArgumentDefinition
}

func (def *ArgumentDefinition) IsDeprecated() bool {
	return def.DeprecationReason != nil
}

type argumentDefinitionObject struct {
	Name              string  `json:"name" yaml:"name"`
	Description       string  `json:"description,omitempty" yaml:"description,omitempty"`
	Type              string  `json:"type,omitempty" yaml:"type,omitempty"`
	DefaultValue      string  `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty"`
	DeprecationReason *string `json:"deprecationReason,omitempty" yaml:"deprecationReason,omitempty"`
	Ignore            bool    `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	Member            string  `json:"member,omitempty" yaml:"member,omitempty"`
}

func (def *ArgumentDefinition) marshalObject() *argumentDefinitionObject {
	obj := &argumentDefinitionObject{
		Name:              def.Name,
		Description:       def.Description,
		Type:              def.Type.String(),
		DefaultValue:      def.DefaultValue.String(),
		DeprecationReason: def.DeprecationReason,
		Ignore:            def.Ignore,
	}
	if def.Member != nil {
		obj.Member = def.Member.String()
	}
	return obj
}

func (def *ArgumentDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(def.marshalObject())
}

func (def *ArgumentDefinition) MarshalYAML() (interface{}, error) {
	return def.marshalObject(), nil
}
