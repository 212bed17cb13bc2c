package mocks

import (
	"context"
	"sync"

	"frontdesk/infras/otel"
)

type otelImpl struct {
	recorder *Recorder
}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	if o.recorder == nil {
		return ctx, NewScope()
	}

	return ctx, o.recorder.start(spanName)
}

// Shutdown implements otel.Otel.
func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}

// NewOtel discards every span.
func NewOtel() otel.Otel {
	return &otelImpl{}
}

// Recorder keeps finished spans in memory for assertions.
type Recorder struct {
	mu    sync.Mutex
	spans []*Span
}

func NewRecorder() (otel.Otel, *Recorder) {
	recorder := &Recorder{}

	return &otelImpl{recorder: recorder}, recorder
}

func (r *Recorder) start(name string) *Span {
	span := &Span{Name: name, Attributes: map[string]any{}}

	r.mu.Lock()
	r.spans = append(r.spans, span)
	r.mu.Unlock()

	return span
}

// Span returns the first span with the given name, or nil.
func (r *Recorder) Span(name string) *Span {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, span := range r.spans {
		if span.Name == name {
			return span
		}
	}

	return nil
}
