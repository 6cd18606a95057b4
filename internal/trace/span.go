package trace

import (
	"context"
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

func nextSeq() uint64 { return seqCounter.Add(1) }

// Span is an open begin/end pair. A Span obtained from a disabled tracer
// is inert; every method is safe to call on it.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	scope   Scope
	name    string
	file    string
	started time.Time
	attrs   []Attr
}

// Begin opens a span under the span recorded in ctx (if any) and emits the
// begin event. The tracer is taken from ctx.
func Begin(ctx context.Context, scope Scope, name, file string) *Span {
	t := FromContext(ctx)
	if !t.Enabled() {
		return &Span{tracer: Nop}
	}
	s := &Span{
		tracer:  t,
		id:      spanCounter.Add(1),
		parent:  parentOf(ctx),
		scope:   scope,
		name:    name,
		file:    file,
		started: time.Now(),
	}
	s.emit(&Event{Kind: KindBegin, Scope: scope, SpanID: s.id, ParentID: s.parent, Name: name, File: file})
	return s
}

// Set attaches an attribute to the end event.
func (s *Span) Set(attrs ...Attr) *Span {
	if s.tracer.Enabled() {
		s.attrs = append(s.attrs, attrs...)
	}
	return s
}

// End emits the end event and returns the span duration.
func (s *Span) End() time.Duration {
	if !s.tracer.Enabled() {
		return 0
	}
	s.emit(&Event{
		Kind:     KindEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Name:     s.name,
		File:     s.file,
		Attrs:    s.attrs,
	})
	return time.Since(s.started)
}

// Point emits an instant event inside the span.
func (s *Span) Point(scope Scope, name, detail string, attrs ...Attr) {
	if !s.tracer.Enabled() {
		return
	}
	s.emit(&Event{Kind: KindPoint, Scope: scope, ParentID: s.id, Name: name, File: s.file, Detail: detail, Attrs: attrs})
}

// Error is Point for an error event; it passes even at LevelError.
func (s *Span) Error(name, detail string, attrs ...Attr) {
	if !s.tracer.Enabled() {
		return
	}
	s.emit(&Event{Kind: KindPoint, Scope: ScopeNode, Err: true, ParentID: s.id, Name: name, File: s.file, Detail: detail, Attrs: attrs})
}

// ID returns the span id, 0 for an inert span.
func (s *Span) ID() uint64 { return s.id }

// Context returns ctx with s as the parent of nested spans.
func (s *Span) Context(ctx context.Context) context.Context {
	if s.id == 0 {
		return ctx
	}
	return context.WithValue(ctx, spanKey{}, s.id)
}

func (s *Span) emit(ev *Event) {
	if !s.tracer.Level().Allows(ev) {
		return
	}
	ev.Time = time.Now()
	s.tracer.Emit(ev)
}
