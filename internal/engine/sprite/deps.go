// Package sprite implements the incremental sprite cache and the batched
// emission engine that keeps merged sprites in sync with their sources.
package sprite

import (
	"context"

	"go.trai.ch/sprite/internal/core/ports"
)

// Deps are the collaborators shared by the manager and its caches.
type Deps struct {
	Builder      ports.SymbolBuilder
	Encoder      ports.SpriteEncoder
	Declarations ports.DeclarationRenderer
	Walker       ports.SourceWalker
	Files        ports.OutputWriter
	Logger       ports.Logger
	// Tracer is optional.
	Tracer ports.Tracer
}

func (d Deps) tracer() ports.Tracer {
	if d.Tracer == nil {
		return noopTracer{}
	}
	return d.Tracer
}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End()                      {}
func (noopSpan) RecordError(error)         {}
func (noopSpan) SetAttribute(string, any) {}
