package descriptors

import (
	"reflect"
	"strings"
	"unicode"
)

// Struct tags read by the default naming conventions and type inspector.
const (
	TagName        = "graphql"
	TagDescription = "description"
	TagDeprecated  = "deprecated"
	TagDefault     = "default"
	TagType        = "gqltype"
	TagIgnore      = "gqlignore"
)

type MemberKind int

const (
	MemberKindDirectiveArgument MemberKind = iota + 1
	MemberKindDirective
)

func (kind MemberKind) String() string {
	switch kind {
	case MemberKindDirectiveArgument:
		return "DirectiveArgument"
	case MemberKindDirective:
		return "Directive"
	default:
		return "Unknown"
	}
}

// NamingConventions derives schema names, descriptions and deprecations from Go members.
type NamingConventions interface {
	// MemberName must not return an empty string.
	MemberName(member *Member, kind MemberKind) string
	MemberDescription(member *Member, kind MemberKind) string
	IsDeprecated(member *Member) (reason string, deprecated bool)
	TypeName(rt reflect.Type, kind MemberKind) string
}

var _ NamingConventions = DefaultNamingConventions{}

// DefaultNamingConventions uses struct tags and falls back to lowerCamelCase names.
//
//	type CacheControl struct {
//		MaxAge int    `graphql:"maxAge" description:"seconds" default:"30"`
//		Scope  string `deprecated:"use policy"`
//	}
type DefaultNamingConventions struct{}

func (DefaultNamingConventions) MemberName(member *Member, kind MemberKind) string {
	if name, ok := member.Tag(TagName); ok {
		name = strings.TrimSpace(strings.Split(name, ",")[0])
		if name != "" && name != "-" {
			return name
		}
	}
	return lowerCamelCase(member.Name())
}

func (DefaultNamingConventions) MemberDescription(member *Member, kind MemberKind) string {
	description, _ := member.Tag(TagDescription)
	return description
}

func (DefaultNamingConventions) IsDeprecated(member *Member) (string, bool) {
	return member.Tag(TagDeprecated)
}

func (DefaultNamingConventions) TypeName(rt reflect.Type, kind MemberKind) string {
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	name := rt.Name()
	if kind == MemberKindDirective && name != "Directive" {
		name = strings.TrimSuffix(name, "Directive")
	}
	return lowerCamelCase(name)
}

// lowerCamelCase lowers the leading upper case run, keeping the start of the next word.
// MaxDepth => maxDepth, ID => id, URLPath => urlPath
func lowerCamelCase(s string) string {
	runes := []rune(s)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}
	switch {
	case upper == 0:
		return s
	case upper == 1 || upper == len(runes):
	default:
		upper--
	}
	for i := 0; i < upper; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
