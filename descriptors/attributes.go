package descriptors

import (
	"strings"
)

// ArgumentAttribute configures an argument from a struct tag when the argument is finalized.
type ArgumentAttribute interface {
	TagKey() string
	Apply(descriptor *ArgumentDescriptor, member *Member, value string) error
}

// NewArgumentAttribute returns an ArgumentAttribute applying fn for the tag key.
func NewArgumentAttribute(key string, fn func(descriptor *ArgumentDescriptor, member *Member, value string) error) ArgumentAttribute {
	return &argumentAttributeFunc{key: key, fn: fn}
}

type argumentAttributeFunc struct {
	key string
	fn  func(descriptor *ArgumentDescriptor, member *Member, value string) error
}

func (attr *argumentAttributeFunc) TagKey() string {
	return attr.key
}

func (attr *argumentAttributeFunc) Apply(descriptor *ArgumentDescriptor, member *Member, value string) error {
	return attr.fn(descriptor, member, value)
}

// BuiltInAttributes returns the attributes understood by DefaultTypeInspector.
//
//	gqltype:"[Int!]"  overrides the type with a parsed type reference
//	gqlignore:"true"  excludes the argument, an empty value means true
//	graphql:"-"       excludes the argument
func BuiltInAttributes() []ArgumentAttribute {
	return []ArgumentAttribute{
		NewArgumentAttribute(TagType, applyTypeAttribute),
		NewArgumentAttribute(TagIgnore, applyIgnoreAttribute),
		NewArgumentAttribute(TagName, applyNameIgnoreAttribute),
	}
}

func applyTypeAttribute(descriptor *ArgumentDescriptor, member *Member, value string) error {
	typ, err := ParseTypeReference(value)
	if err != nil {
		return err
	}
	descriptor.TypeSyntax(typ)
	return nil
}

func applyIgnoreAttribute(descriptor *ArgumentDescriptor, member *Member, value string) error {
	if strings.TrimSpace(value) == "" {
		descriptor.Ignore()
		return nil
	}
	ignore, err := ParseBoolLiteral(value)
	if err != nil {
		return err
	}
	descriptor.SetIgnore(ignore)
	return nil
}

func applyNameIgnoreAttribute(descriptor *ArgumentDescriptor, member *Member, value string) error {
	if strings.TrimSpace(strings.Split(value, ",")[0]) == "-" {
		descriptor.Ignore()
	}
	return nil
}
