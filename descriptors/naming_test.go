package descriptors

import (
	"errors"
	"reflect"
	"testing"
)

func TestLowerCamelCase(t *testing.T) {
	tests := map[string]string{
		"MaxDepth": "maxDepth",
		"ID":       "id",
		"URLPath":  "urlPath",
		"maxAge":   "maxAge",
		"X":        "x",
		"":         "",
	}
	for input, expect := range tests {
		if v := lowerCamelCase(input); v != expect {
			t.Errorf("%s: expected %s, got %s", input, expect, v)
		}
	}
}

func TestDefaultNamingConventions(t *testing.T) {
	type sample struct {
		MaxAge  int    `graphql:"ttl,omitempty" description:"lifetime"`
		Scope   string `graphql:"-" deprecated:""`
		URLPath string
	}
	naming := DefaultNamingConventions{}

	tests := []struct {
		field       string
		name        string
		description string
		deprecated  bool
	}{
		{"MaxAge", "ttl", "lifetime", false},
		{"Scope", "scope", "", true},
		{"URLPath", "urlPath", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			member := mustMember(t, sample{}, tt.field)
			if v := naming.MemberName(member, MemberKindDirectiveArgument); v != tt.name {
				t.Errorf("expected %s, got %s", tt.name, v)
			}
			if v := naming.MemberDescription(member, MemberKindDirectiveArgument); v != tt.description {
				t.Errorf("expected %s, got %s", tt.description, v)
			}
			if _, v := naming.IsDeprecated(member); v != tt.deprecated {
				t.Errorf("expected %v, got %v", tt.deprecated, v)
			}
		})
	}

	if v := naming.TypeName(reflect.TypeOf(&CacheControlDirective{}), MemberKindDirective); v != "cacheControl" {
		t.Errorf("unexpected directive name: %s", v)
	}
}

func TestMemberOf(t *testing.T) {
	type sample struct {
		Exported   int
		unexported int
	}
	_ = sample{}.unexported

	member, err := MemberOf(&sample{}, "Exported")
	if err != nil {
		t.Fatal(err)
	}
	if member.String() != "sample.Exported" {
		t.Errorf("unexpected: %s", member.String())
	}

	for _, name := range []string{"unexported", "Missing"} {
		_, err := MemberOf(sample{}, name)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: unexpected error: %v", name, err)
		}
	}

	_, err = MemberOf(1, "Exported")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unexpected error: %v", err)
	}
	_, err = MembersOf(nil)
	if !errors.Is(err, ErrNilReference) {
		t.Errorf("unexpected error: %v", err)
	}

	members, err := MembersOf(reflect.TypeOf(sample{}))
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 1 {
		t.Errorf("unexpected members: %d", len(members))
	}
}
