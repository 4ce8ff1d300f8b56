package descriptors

import (
	"fmt"
	"reflect"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldesc/internal/graphql"
	"github.com/vvakame/gqldesc/internal/log"
	"github.com/vvakame/gqldesc/types"
)

// DefaultDeprecationReason is set by ArgumentDescriptor.Deprecated.
const DefaultDeprecationReason = graphql.DeprecationDefaultReason

// ArgumentDescriptor is a fluent configuration API for a directive argument.
// Every configuration method overwrites its field and returns the same descriptor.
type ArgumentDescriptor struct {
	context    *DescriptorContext
	definition *ArgumentDefinition

	onBeforeCreate []func(ctx *DescriptorContext, def *ArgumentDefinition) error
	// hooksRun counts the hooks that completed without error.
	hooksRun int
}

// NewArgumentDescriptor creates a descriptor for an argument named name.
func NewArgumentDescriptor(ctx *DescriptorContext, name string) (*ArgumentDescriptor, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: argument name must not be empty", ErrInvalidArgument)
	}
	d := newArgumentDescriptor(ctx, &ArgumentDefinition{})
	d.definition.Name = name
	return d, nil
}

// NewArgumentDescriptorFromMember creates a descriptor derived from a struct field.
// Attributes of the member are applied when the definition is created.
func NewArgumentDescriptorFromMember(ctx *DescriptorContext, member *Member) (*ArgumentDescriptor, error) {
	if member == nil {
		return nil, fmt.Errorf("%w: member is nil", ErrNilReference)
	}

	d := newArgumentDescriptor(ctx, &ArgumentDefinition{})
	def := d.definition
	def.Name = ctx.Naming.MemberName(member, MemberKindDirectiveArgument)
	if def.Name == "" {
		return nil, fmt.Errorf("%w: naming conventions returned an empty name for %s", ErrInvalidArgument, member.String())
	}
	def.Description = ctx.Naming.MemberDescription(member, MemberKindDirectiveArgument)
	def.Type = ctx.TypeInspector.InputTypeRef(member)
	def.Member = member

	defaultValue, ok, err := ctx.TypeInspector.DefaultValue(member)
	if err != nil {
		return nil, err
	}
	if ok {
		def.DefaultValue = RuntimeDefault(defaultValue)
	}

	if reason, ok := ctx.Naming.IsDeprecated(member); ok {
		d.DeprecatedWithReason(reason)
	}

	return d, nil
}

// ArgumentDescriptorFrom adopts a pre-built definition.
func ArgumentDescriptorFrom(ctx *DescriptorContext, def *ArgumentDefinition) (*ArgumentDescriptor, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: definition is nil", ErrNilReference)
	}
	return newArgumentDescriptor(ctx, def), nil
}

func newArgumentDescriptor(ctx *DescriptorContext, def *ArgumentDefinition) *ArgumentDescriptor {
	return &ArgumentDescriptor{
		context:    ctx,
		definition: def,
	}
}

func (d *ArgumentDescriptor) Context() *DescriptorContext {
	return d.context
}

// OnBeforeCreate registers fn to run after attributes are applied.
// A hook runs until it succeeds once; a failing hook is retried by the next CreateDefinition.
func (d *ArgumentDescriptor) OnBeforeCreate(fn func(ctx *DescriptorContext, def *ArgumentDefinition) error) *ArgumentDescriptor {
	d.onBeforeCreate = append(d.onBeforeCreate, fn)
	return d
}

// CreateDefinition finalizes the descriptor.
// Attributes are applied at most once, calling it again returns the same definition.
func (d *ArgumentDescriptor) CreateDefinition() (*ArgumentDefinition, error) {
	def := d.definition

	if !def.AttributesApplied {
		if def.Member != nil {
			d.context.Logger.V(log.TraceLevel).Info("apply attributes", "argument", def.Name, "member", def.Member.String())
			err := d.context.TypeInspector.ApplyAttributes(d.context, d, def.Member)
			if err != nil {
				return nil, err
			}
		}
		def.AttributesApplied = true
	}

	for d.hooksRun < len(d.onBeforeCreate) {
		err := d.onBeforeCreate[d.hooksRun](d.context, def)
		if err != nil {
			return nil, err
		}
		d.hooksRun++
	}

	if def.Name == "" {
		return nil, fmt.Errorf("%w: argument name must not be empty", ErrInvalidArgument)
	}

	return def, nil
}

func (d *ArgumentDescriptor) SyntaxNode(node *ast.ArgumentDefinition) *ArgumentDescriptor {
	d.definition.SyntaxNode = node
	return d
}

// Name fails with ErrInvalidArgument when value is empty.
func (d *ArgumentDescriptor) Name(value string) (*ArgumentDescriptor, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: argument name must not be empty", ErrInvalidArgument)
	}
	d.definition.Name = value
	return d, nil
}

// Deprecated marks the argument deprecated with DefaultDeprecationReason.
func (d *ArgumentDescriptor) Deprecated() *ArgumentDescriptor {
	return d.DeprecatedWithReason(DefaultDeprecationReason)
}

func (d *ArgumentDescriptor) DeprecatedWithReason(reason string) *ArgumentDescriptor {
	d.definition.DeprecationReason = &reason
	return d
}

func (d *ArgumentDescriptor) Description(value string) *ArgumentDescriptor {
	d.definition.Description = value
	return d
}

// TypeReference sets any kind of type reference, e.g. StaticType[types.IntType]().
func (d *ArgumentDescriptor) TypeReference(ref TypeReference) *ArgumentDescriptor {
	d.definition.Type = ref
	return d
}

func (d *ArgumentDescriptor) Type(typ types.InputType) *ArgumentDescriptor {
	return d.TypeReference(SchemaType(typ))
}

func (d *ArgumentDescriptor) TypeSyntax(typ *ast.Type) *ArgumentDescriptor {
	return d.TypeReference(SyntaxType(typ))
}

// RuntimeType defers the resolution of rt to the TypeInspector.
func (d *ArgumentDescriptor) RuntimeType(rt reflect.Type) *ArgumentDescriptor {
	return d.TypeReference(RuntimeType(rt))
}

func (d *ArgumentDescriptor) DefaultValueSyntax(value *ast.Value) *ArgumentDescriptor {
	d.definition.DefaultValue = SyntaxDefault(value)
	return d
}

func (d *ArgumentDescriptor) DefaultValue(value any) *ArgumentDescriptor {
	d.definition.DefaultValue = RuntimeDefault(value)
	return d
}

func (d *ArgumentDescriptor) Ignore() *ArgumentDescriptor {
	return d.SetIgnore(true)
}

func (d *ArgumentDescriptor) SetIgnore(ignore bool) *ArgumentDescriptor {
	d.definition.Ignore = ignore
	return d
}
