package mocks

import (
	"maps"
	"sync"

	"frontdesk/infras/otel"
)

type scopeImpl struct{}

func (s *scopeImpl) AddEvent(_ string, _ ...map[string]any) {}
func (s *scopeImpl) End()                                   {}
func (s *scopeImpl) SetAttribute(_ string, _ any)           {}
func (s *scopeImpl) SetAttributes(_ map[string]any)         {}
func (s *scopeImpl) TraceError(_ error)                     {}
func (s *scopeImpl) TraceIfError(_ error)                   {}

func NewScope() otel.Scope {
	return &scopeImpl{}
}

// Span is a recorded scope.
type Span struct {
	mu sync.Mutex

	Name       string
	Events     []string
	Attributes map[string]any
	Err        error
	Ended      bool
}

func (s *Span) AddEvent(name string, _ ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Events = append(s.Events, name)
}

func (s *Span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Ended = true
}

func (s *Span) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Attributes[key] = value
}

func (s *Span) SetAttributes(attributes map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	maps.Copy(s.Attributes, attributes)
}

func (s *Span) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Err = err
}

func (s *Span) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}
