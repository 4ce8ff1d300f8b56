package descriptors

import (
	"fmt"
	"reflect"
)

// Member is a handle of a struct field an argument is derived from.
// It is only used for lookups and is never mutated.
type Member struct {
	Owner reflect.Type
	Field reflect.StructField
}

func (m *Member) Name() string {
	return m.Field.Name
}

func (m *Member) Type() reflect.Type {
	return m.Field.Type
}

func (m *Member) Tag(key string) (string, bool) {
	return m.Field.Tag.Lookup(key)
}

func (m *Member) String() string {
	if m.Owner == nil {
		return m.Field.Name
	}
	return m.Owner.Name() + "." + m.Field.Name
}

// MemberOf returns the member named fieldName of the struct v.
// v is a struct value, a pointer to a struct or a reflect.Type of them.
func MemberOf(v any, fieldName string) (*Member, error) {
	rt, err := structType(v)
	if err != nil {
		return nil, err
	}
	field, ok := rt.FieldByName(fieldName)
	if !ok || len(field.Index) != 1 {
		return nil, fmt.Errorf("%w: %s has no field %s", ErrInvalidArgument, rt.Name(), fieldName)
	}
	if !field.IsExported() {
		return nil, fmt.Errorf("%w: %s.%s is not exported", ErrInvalidArgument, rt.Name(), fieldName)
	}
	return &Member{Owner: rt, Field: field}, nil
}

// MembersOf returns the exported, non embedded fields of the struct v in declaration order.
func MembersOf(v any) ([]*Member, error) {
	rt, err := structType(v)
	if err != nil {
		return nil, err
	}
	members := make([]*Member, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}
		members = append(members, &Member{Owner: rt, Field: field})
	}
	return members, nil
}

func structType(v any) (reflect.Type, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: struct is nil", ErrNilReference)
	}
	rt, ok := v.(reflect.Type)
	if !ok {
		rt = reflect.TypeOf(v)
	}
	if rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrInvalidArgument, rt.String())
	}
	return rt, nil
}
