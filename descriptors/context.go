package descriptors

import (
	"context"
	"reflect"

	"github.com/go-logr/logr"
	"github.com/vvakame/gqldesc/internal/log"
	"github.com/vvakame/gqldesc/types"
)

type ContextConfig struct {
	// Naming defaults to DefaultNamingConventions.
	Naming NamingConventions
	// TypeInspector defaults to a DefaultTypeInspector made from Bindings and Attributes.
	TypeInspector TypeInspector

	Bindings   map[reflect.Type]types.InputType
	Attributes []ArgumentAttribute
}

// DescriptorContext carries the collaborators shared by descriptors.
// It is read-only once created and may be shared by descriptors built concurrently.
type DescriptorContext struct {
	Naming        NamingConventions
	TypeInspector TypeInspector
	Logger        logr.Logger
}

func NewDescriptorContext(ctx context.Context, cfg *ContextConfig) *DescriptorContext {
	if cfg == nil {
		cfg = &ContextConfig{}
	}

	dc := &DescriptorContext{
		Naming:        cfg.Naming,
		TypeInspector: cfg.TypeInspector,
		Logger:        log.Named(ctx, "descriptors"),
	}
	if dc.Naming == nil {
		dc.Naming = DefaultNamingConventions{}
	}
	if dc.TypeInspector == nil {
		dc.TypeInspector = NewDefaultTypeInspector(cfg.Bindings, cfg.Attributes...)
	}

	return dc
}
