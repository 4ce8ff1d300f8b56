package descriptors

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

type DefaultValueKind int

const (
	DefaultValueNone DefaultValueKind = iota
	DefaultValueSyntax
	DefaultValueRuntime
)

// DefaultValue holds either a literal or a runtime value.
// Setting one representation replaces the other.
type DefaultValue struct {
	Kind    DefaultValueKind
	Syntax  *ast.Value
	Runtime any
}

// SyntaxDefault makes a literal default value, nil is the null literal.
func SyntaxDefault(value *ast.Value) DefaultValue {
	if value == nil {
		value = NullValue()
	}
	return DefaultValue{Kind: DefaultValueSyntax, Syntax: value}
}

// RuntimeDefault makes a runtime default value, nil is the null literal.
func RuntimeDefault(value any) DefaultValue {
	if value == nil {
		return SyntaxDefault(nil)
	}
	return DefaultValue{Kind: DefaultValueRuntime, Runtime: value}
}

func (dv DefaultValue) IsSet() bool {
	return dv.Kind != DefaultValueNone
}

func (dv DefaultValue) String() string {
	switch dv.Kind {
	case DefaultValueSyntax:
		return dv.Syntax.String()
	case DefaultValueRuntime:
		return fmt.Sprintf("%v", dv.Runtime)
	default:
		return ""
	}
}

func NullValue() *ast.Value {
	return &ast.Value{Kind: ast.NullValue, Raw: "null"}
}
