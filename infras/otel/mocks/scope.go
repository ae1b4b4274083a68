package mocks

import (
	"sync"

	"playcourt/infras/otel"
)

// Recorder collects what scopes opened by a recording Otel were given.
type Recorder struct {
	mu     sync.Mutex
	Spans  []string
	Errors []error
	Events []string
}

func (r *Recorder) span(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Spans = append(r.Spans, name)
}

func (r *Recorder) error(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Errors = append(r.Errors, err)
}

func (r *Recorder) event(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Events = append(r.Events, name)
}

type scopeImpl struct {
	recorder *Recorder
}

func (s *scopeImpl) AddEvent(name string) {
	if s.recorder != nil {
		s.recorder.event(name)
	}
}

func (s *scopeImpl) End() {}

func (s *scopeImpl) SetAttribute(_ string, _ any) {}

func (s *scopeImpl) SetAttributes(_ map[string]any) {}

func (s *scopeImpl) TraceError(err error) {
	if s.recorder != nil {
		s.recorder.error(err)
	}
}

func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

// NewScope returns a scope that discards everything.
func NewScope() otel.Scope {
	return &scopeImpl{}
}
