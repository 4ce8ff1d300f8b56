package descriptors

import (
	"fmt"
	"reflect"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vvakame/gqldesc/internal/log"
	"github.com/vvakame/gqldesc/internal/utils"
	"github.com/vvakame/gqldesc/types"
)

// TypeInspector maps Go members and types to input types and applies attributes.
type TypeInspector interface {
	InputTypeRef(member *Member) TypeReference
	// DefaultValue reports the static default value declared for member.
	DefaultValue(member *Member) (value any, ok bool, err error)
	// ApplyAttributes configures descriptor from the attributes found on member.
	ApplyAttributes(ctx *DescriptorContext, descriptor *ArgumentDescriptor, member *Member) error
	ResolveInputType(ref TypeReference) (types.InputType, error)
}

var _ TypeInspector = (*DefaultTypeInspector)(nil)

var inputTypeInterface = reflect.TypeOf((*types.InputType)(nil)).Elem()

type DefaultTypeInspector struct {
	// Bindings take precedence over the kind based mapping.
	Bindings   map[reflect.Type]types.InputType
	Attributes []ArgumentAttribute
}

// NewDefaultTypeInspector returns an inspector applying the built-in attributes followed by attrs.
func NewDefaultTypeInspector(bindings map[reflect.Type]types.InputType, attrs ...ArgumentAttribute) *DefaultTypeInspector {
	ti := &DefaultTypeInspector{
		Bindings: bindings,
	}
	ti.Attributes = append(ti.Attributes, BuiltInAttributes()...)
	ti.Attributes = append(ti.Attributes, attrs...)
	return ti
}

func (ti *DefaultTypeInspector) InputTypeRef(member *Member) TypeReference {
	return RuntimeType(member.Type())
}

func (ti *DefaultTypeInspector) DefaultValue(member *Member) (any, bool, error) {
	raw, ok := member.Tag(TagDefault)
	if !ok {
		return nil, false, nil
	}
	value, err := coerceDefaultValue(raw, member.Type())
	if err != nil {
		return nil, false, fmt.Errorf("default value of %s: %w", member.String(), err)
	}
	// the Go kind may be wider than the input type, e.g. int64 for Int.
	if typ, err := ti.inputTypeOf(member.Type()); err == nil {
		if _, err := ValueToLiteral(value, typ); err != nil {
			return nil, false, fmt.Errorf("default value of %s: %w", member.String(), err)
		}
	}
	return value, true, nil
}

func (ti *DefaultTypeInspector) ApplyAttributes(ctx *DescriptorContext, descriptor *ArgumentDescriptor, member *Member) error {
	for _, attr := range ti.Attributes {
		value, ok := member.Tag(attr.TagKey())
		if !ok {
			continue
		}
		ctx.Logger.V(log.TraceLevel).Info("apply attribute", "member", member.String(), "tag", attr.TagKey())
		err := attr.Apply(descriptor, member, value)
		if err != nil {
			return fmt.Errorf("attribute %s of %s: %w", attr.TagKey(), member.String(), err)
		}
	}
	return nil
}

func (ti *DefaultTypeInspector) ResolveInputType(ref TypeReference) (types.InputType, error) {
	switch ref.Kind {
	case TypeReferenceSchema:
		return ref.Type, nil
	case TypeReferenceStatic:
		return instantiateInputType(ref.Runtime)
	case TypeReferenceRuntime:
		return ti.inputTypeOf(ref.Runtime)
	case TypeReferenceSyntax:
		return ti.inputTypeOfSyntax(ref)
	default:
		return nil, fmt.Errorf("%w: type is not specified", ErrNilReference)
	}
}

func (ti *DefaultTypeInspector) inputTypeOf(rt reflect.Type) (types.InputType, error) {
	if typ, ok := ti.Bindings[rt]; ok {
		return typ, nil
	}
	if rt.Implements(inputTypeInterface) {
		return instantiateInputType(rt)
	}

	nullable := false
	if rt.Kind() == reflect.Ptr {
		nullable = true
		rt = rt.Elem()
		if typ, ok := ti.Bindings[rt]; ok {
			return typ, nil
		}
	}

	var typ types.InputType
	switch rt.Kind() {
	case reflect.Bool:
		typ = types.Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		typ = types.Int
	case reflect.Float32, reflect.Float64:
		typ = types.Float
	case reflect.String:
		typ = types.String
	case reflect.Slice, reflect.Array:
		if rt.Kind() == reflect.Slice {
			nullable = true
		}
		elemType, err := ti.inputTypeOf(rt.Elem())
		if err != nil {
			return nil, err
		}
		typ = types.ListOf(elemType)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rt.String())
	}

	if nullable {
		return typ, nil
	}
	return types.NonNull(typ), nil
}

func (ti *DefaultTypeInspector) inputTypeOfSyntax(ref TypeReference) (types.InputType, error) {
	var build func(typ *ast.Type) (types.InputType, error)
	build = func(typ *ast.Type) (types.InputType, error) {
		var result types.InputType
		if typ.Elem != nil {
			elem, err := build(typ.Elem)
			if err != nil {
				return nil, err
			}
			result = types.ListOf(elem)
		} else {
			named, err := ti.namedInputType(typ.NamedType)
			if err != nil {
				return nil, err
			}
			result = named
		}
		if typ.NonNull {
			result = types.NonNull(result)
		}
		return result, nil
	}
	return build(ref.Syntax)
}

func (ti *DefaultTypeInspector) namedInputType(name string) (types.InputType, error) {
	var found types.InputType
	for _, typ := range ti.Bindings {
		named := types.Named(typ)
		def := named.Definition()
		if def == nil || def.Name != name || !utils.IsInputTypeDef(def) {
			continue
		}
		if found != nil && !reflect.DeepEqual(found, named) {
			return nil, fmt.Errorf("%w: type %s is bound to different input types", ErrInvalidArgument, name)
		}
		found = named
	}
	if found != nil {
		return found, nil
	}
	typ := types.Scalar(name)
	if !types.IsSpecifiedScalar(typ) {
		return nil, fmt.Errorf("%w: unknown type %s", ErrUnsupportedType, name)
	}
	return typ, nil
}

func instantiateInputType(rt reflect.Type) (types.InputType, error) {
	if rt == nil || !rt.Implements(inputTypeInterface) {
		return nil, fmt.Errorf("%w: %v is not an input type", ErrUnsupportedType, rt)
	}
	var v reflect.Value
	if rt.Kind() == reflect.Ptr {
		v = reflect.New(rt.Elem())
	} else {
		v = reflect.Zero(rt)
	}
	return v.Interface().(types.InputType), nil
}

// coerceDefaultValue converts a default tag into a value of rt.
// Scalars accept the plain text form, other kinds a GraphQL literal.
func coerceDefaultValue(raw string, rt reflect.Type) (any, error) {
	base := rt
	if base.Kind() == reflect.Ptr {
		base = base.Elem()
	}

	out := reflect.New(base).Elem()
	switch base.Kind() {
	case reflect.Bool:
		b, err := ParseBoolLiteral(raw)
		if err != nil {
			return nil, err
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := graphql.UnmarshalInt64(raw)
		if err != nil {
			return nil, err
		}
		if out.OverflowInt(i) {
			return nil, fmt.Errorf("%w: %d overflows %s", ErrInvalidArgument, i, base.String())
		}
		out.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := graphql.UnmarshalInt64(raw)
		if err != nil {
			return nil, err
		}
		if i < 0 || out.OverflowUint(uint64(i)) {
			return nil, fmt.Errorf("%w: %d overflows %s", ErrInvalidArgument, i, base.String())
		}
		out.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		f, err := graphql.UnmarshalFloat(raw)
		if err != nil {
			return nil, err
		}
		if out.OverflowFloat(f) {
			return nil, fmt.Errorf("%w: %v overflows %s", ErrInvalidArgument, f, base.String())
		}
		out.SetFloat(f)
	case reflect.String:
		s, err := graphql.UnmarshalString(raw)
		if err != nil {
			return nil, err
		}
		out.SetString(s)
	default:
		literal, err := ParseValueLiteral(raw)
		if err != nil {
			return nil, err
		}
		return literal.Value(nil)
	}

	if rt.Kind() == reflect.Ptr {
		ptr := reflect.New(base)
		ptr.Elem().Set(out)
		return ptr.Interface(), nil
	}
	return out.Interface(), nil
}
