package descriptors

import (
	"context"
	"reflect"
	"testing"

	testlogr "github.com/go-logr/logr/testing"
	"github.com/google/go-cmp/cmp"
	"github.com/vvakame/gqldesc/internal/log"
)

var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b reflect.Type) bool {
		return a == b
	}),
}

func newTestContext(t *testing.T, cfg *ContextConfig) *DescriptorContext {
	t.Helper()

	ctx := context.Background()
	ctx = log.WithLogger(ctx, testlogr.NewTestLogger(t))
	return NewDescriptorContext(ctx, cfg)
}

// countingTypeInspector records how often attributes are applied.
type countingTypeInspector struct {
	*DefaultTypeInspector
	applied int
}

func (ti *countingTypeInspector) ApplyAttributes(ctx *DescriptorContext, descriptor *ArgumentDescriptor, member *Member) error {
	ti.applied++
	return ti.DefaultTypeInspector.ApplyAttributes(ctx, descriptor, member)
}

func mustMember(t *testing.T, v any, fieldName string) *Member {
	t.Helper()

	member, err := MemberOf(v, fieldName)
	if err != nil {
		t.Fatal(err)
	}
	return member
}
