package descriptors

import (
	"fmt"
	"reflect"

	"github.com/vektah/gqlparser/v2/ast"
)

type DirectiveTypeDefinition struct {
	Name         string
	Description  string
	Locations    []ast.DirectiveLocation
	IsRepeatable bool
	Arguments    []*ArgumentDefinition

	// RuntimeType is the struct the directive is derived from, if any.
	RuntimeType reflect.Type
}

// DirectiveTypeDescriptor is a fluent configuration API for a directive declaration.
type DirectiveTypeDescriptor struct {
	context    *DescriptorContext
	definition *DirectiveTypeDefinition
	arguments  []*ArgumentDescriptor
}

func NewDirectiveTypeDescriptor(ctx *DescriptorContext, name string) (*DirectiveTypeDescriptor, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: directive name must not be empty", ErrInvalidArgument)
	}
	return &DirectiveTypeDescriptor{
		context: ctx,
		definition: &DirectiveTypeDefinition{
			Name: name,
		},
	}, nil
}

// NewDirectiveTypeDescriptorFromStruct creates a descriptor with one argument per exported field of v.
func NewDirectiveTypeDescriptorFromStruct(ctx *DescriptorContext, v any) (*DirectiveTypeDescriptor, error) {
	rt, err := structType(v)
	if err != nil {
		return nil, err
	}

	d, err := NewDirectiveTypeDescriptor(ctx, ctx.Naming.TypeName(rt, MemberKindDirective))
	if err != nil {
		return nil, err
	}
	d.definition.RuntimeType = rt

	members, err := MembersOf(rt)
	if err != nil {
		return nil, err
	}
	for _, member := range members {
		argument, err := NewArgumentDescriptorFromMember(ctx, member)
		if err != nil {
			return nil, err
		}
		d.arguments = append(d.arguments, argument)
	}

	return d, nil
}

func (d *DirectiveTypeDescriptor) Context() *DescriptorContext {
	return d.context
}

func (d *DirectiveTypeDescriptor) Name(value string) (*DirectiveTypeDescriptor, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: directive name must not be empty", ErrInvalidArgument)
	}
	d.definition.Name = value
	return d, nil
}

func (d *DirectiveTypeDescriptor) Description(value string) *DirectiveTypeDescriptor {
	d.definition.Description = value
	return d
}

// Location adds locations, duplicates are ignored.
func (d *DirectiveTypeDescriptor) Location(locations ...ast.DirectiveLocation) *DirectiveTypeDescriptor {
OUTER:
	for _, location := range locations {
		for _, current := range d.definition.Locations {
			if current == location {
				continue OUTER
			}
		}
		d.definition.Locations = append(d.definition.Locations, location)
	}
	return d
}

func (d *DirectiveTypeDescriptor) Repeatable() *DirectiveTypeDescriptor {
	d.definition.IsRepeatable = true
	return d
}

// Argument returns the descriptor of the argument named name, creating it when absent.
func (d *DirectiveTypeDescriptor) Argument(name string) (*ArgumentDescriptor, error) {
	for _, argument := range d.arguments {
		if argument.definition.Name == name {
			return argument, nil
		}
	}

	argument, err := NewArgumentDescriptor(d.context, name)
	if err != nil {
		return nil, err
	}
	d.arguments = append(d.arguments, argument)
	return argument, nil
}

// ArgumentFrom adds an argument adopting a pre-built definition.
func (d *DirectiveTypeDescriptor) ArgumentFrom(def *ArgumentDefinition) (*ArgumentDescriptor, error) {
	argument, err := ArgumentDescriptorFrom(d.context, def)
	if err != nil {
		return nil, err
	}
	d.arguments = append(d.arguments, argument)
	return argument, nil
}

// CreateDefinition finalizes the directive and all of its arguments in declaration order.
func (d *DirectiveTypeDescriptor) CreateDefinition() (*DirectiveTypeDefinition, error) {
	arguments := make([]*ArgumentDefinition, 0, len(d.arguments))
	for _, argument := range d.arguments {
		def, err := argument.CreateDefinition()
		if err != nil {
			return nil, fmt.Errorf("directive @%s: %w", d.definition.Name, err)
		}
		arguments = append(arguments, def)
	}
	d.definition.Arguments = arguments

	return d.definition, nil
}
