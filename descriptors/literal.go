package descriptors

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vvakame/gqldesc/internal/graphql"
	"github.com/vvakame/gqldesc/internal/utils"
	"github.com/vvakame/gqldesc/types"
)

// ParseValueLiteral parses a constant GraphQL value, e.g. `[1, 2]` or `{scope: PUBLIC}`.
func ParseValueLiteral(source string) (*ast.Value, error) {
	queryDocument, gErr := parser.ParseQuery(&ast.Source{
		Input: "{f(v: " + source + ")}",
	})
	if gErr != nil {
		return nil, fmt.Errorf("%w: malformed value literal %q: %s", ErrInvalidArgument, source, gErr.Error())
	}

	if len(queryDocument.Operations) != 1 || len(queryDocument.Operations[0].SelectionSet) != 1 {
		return nil, fmt.Errorf("%w: malformed value literal %q", ErrInvalidArgument, source)
	}
	field, ok := queryDocument.Operations[0].SelectionSet[0].(*ast.Field)
	if !ok || len(field.Arguments) != 1 || len(field.SelectionSet) != 0 {
		return nil, fmt.Errorf("%w: malformed value literal %q", ErrInvalidArgument, source)
	}
	value := field.Arguments[0].Value
	if containsVariable(value) {
		return nil, fmt.Errorf("%w: value literal %q must be constant", ErrInvalidArgument, source)
	}
	return value, nil
}

// ParseTypeReference parses a type reference, e.g. `[Int!]!`.
func ParseTypeReference(source string) (*ast.Type, error) {
	schemaDoc, gErr := parser.ParseSchema(&ast.Source{
		Input: "directive @t(v: " + source + ") on FIELD",
	})
	if gErr != nil {
		return nil, fmt.Errorf("%w: malformed type %q: %s", ErrInvalidArgument, source, gErr.Error())
	}
	if len(schemaDoc.Directives) != 1 || len(schemaDoc.Directives[0].Arguments) != 1 || len(schemaDoc.Definitions) != 0 {
		return nil, fmt.Errorf("%w: malformed type %q", ErrInvalidArgument, source)
	}
	arg := schemaDoc.Directives[0].Arguments[0]
	if arg.DefaultValue != nil || len(arg.Directives) != 0 {
		return nil, fmt.Errorf("%w: malformed type %q", ErrInvalidArgument, source)
	}
	return arg.Type, nil
}

// ParseBoolLiteral accepts only the literals true and false.
func ParseBoolLiteral(source string) (bool, error) {
	literal, err := ParseValueLiteral(source)
	if err != nil {
		return false, err
	}
	if literal.Kind != ast.BooleanValue {
		return false, fmt.Errorf("%w: %q is not a boolean, want true or false", ErrInvalidArgument, source)
	}
	return literal.Raw == "true", nil
}

func containsVariable(value *ast.Value) bool {
	if value == nil {
		return false
	}
	if value.Kind == ast.Variable {
		return true
	}
	for _, child := range value.Children {
		if containsVariable(child.Value) {
			return true
		}
	}
	return false
}

// ValueToLiteral converts a runtime value into a GraphQL literal.
// typ may be nil; when known it decides between enum and string literals
// and bounds integers to the 32-bit range of Int.
func ValueToLiteral(value any, typ types.InputType) (*ast.Value, error) {
	if value == nil {
		return NullValue(), nil
	}
	if literal, ok := value.(*ast.Value); ok {
		return utils.CopyValue(literal), nil
	}
	return valueToLiteral(reflect.ValueOf(value), typ)
}

func valueToLiteral(rv reflect.Value, typ types.InputType) (*ast.Value, error) {
	if nonNull, ok := typ.(*types.NonNullType); ok {
		typ = nonNull.Of
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return NullValue(), nil
		}
	}

	if rv.CanInterface() {
		if isEnum(typ) {
			if stringer, ok := rv.Interface().(fmt.Stringer); ok {
				return &ast.Value{Kind: ast.EnumValue, Raw: stringer.String()}, nil
			}
		}
		if marshaler, ok := rv.Interface().(encoding.TextMarshaler); ok {
			text, err := marshaler.MarshalText()
			if err != nil {
				return nil, err
			}
			return stringLiteral(string(text), typ), nil
		}
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return valueToLiteral(rv.Elem(), typ)

	case reflect.Bool:
		return &ast.Value{Kind: ast.BooleanValue, Raw: strconv.FormatBool(rv.Bool())}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if isInt(typ) && (i < math.MinInt32 || i > math.MaxInt32) {
			return nil, fmt.Errorf("%w: %d overflows Int", ErrInvalidArgument, i)
		}
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatInt(i, 10)}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if isInt(typ) && u > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d overflows Int", ErrInvalidArgument, u)
		}
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatUint(u, 10)}, nil

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %v can not be represented as a literal", ErrUnsupportedType, f)
		}
		raw := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(raw, ".e") {
			raw += ".0"
		}
		return &ast.Value{Kind: ast.FloatValue, Raw: raw}, nil

	case reflect.String:
		return stringLiteral(rv.String(), typ), nil

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return NullValue(), nil
		}
		var elemType types.InputType
		if list, ok := typ.(*types.ListType); ok {
			elemType = list.Of
		}
		literal := &ast.Value{Kind: ast.ListValue}
		for i := 0; i < rv.Len(); i++ {
			child, err := valueToLiteral(rv.Index(i), elemType)
			if err != nil {
				return nil, err
			}
			literal.Children = append(literal.Children, &ast.ChildValue{Value: child})
		}
		return literal, nil

	case reflect.Map:
		if rv.IsNil() {
			return NullValue(), nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key of %s must be string", ErrUnsupportedType, rv.Type().String())
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return keys[i].String() < keys[j].String()
		})
		literal := &ast.Value{Kind: ast.ObjectValue}
		for _, key := range keys {
			child, err := valueToLiteral(rv.MapIndex(key), nil)
			if err != nil {
				return nil, err
			}
			literal.Children = append(literal.Children, &ast.ChildValue{Name: key.String(), Value: child})
		}
		return literal, nil

	case reflect.Struct:
		members, err := MembersOf(rv.Type())
		if err != nil {
			return nil, err
		}
		literal := &ast.Value{Kind: ast.ObjectValue}
		for _, member := range members {
			name := DefaultNamingConventions{}.MemberName(member, MemberKindDirectiveArgument)
			child, err := valueToLiteral(rv.FieldByIndex(member.Field.Index), nil)
			if err != nil {
				return nil, err
			}
			literal.Children = append(literal.Children, &ast.ChildValue{Name: name, Value: child})
		}
		return literal, nil
	}

	return nil, fmt.Errorf("%w: %s can not be represented as a literal", ErrUnsupportedType, rv.Type().String())
}

func isEnum(typ types.InputType) bool {
	if typ == nil {
		return false
	}
	def := types.Named(typ).Definition()
	return def != nil && def.Kind == ast.Enum
}

// isInt reports whether typ is the specified Int scalar, which is 32-bit.
func isInt(typ types.InputType) bool {
	if typ == nil {
		return false
	}
	def := types.Named(typ).Definition()
	return def != nil && def.Kind == ast.Scalar && def.Name == graphql.GraphQLInt.Name
}

func stringLiteral(s string, typ types.InputType) *ast.Value {
	if isEnum(typ) {
		return &ast.Value{Kind: ast.EnumValue, Raw: s}
	}
	return &ast.Value{Kind: ast.StringValue, Raw: s}
}
