package doubles

import (
	"context"
	"sync"
)

// RecorderSink is a spy Sink that keeps every emitted text in the order of the emissions.
type RecorderSink struct {
	m     sync.Mutex
	texts []string
	ctxs  []context.Context
}

func (s *RecorderSink) Emit(ctx context.Context, text string) {
	s.m.Lock()
	defer s.m.Unlock()
	s.texts = append(s.texts, text)
	s.ctxs = append(s.ctxs, ctx)
}

func (s *RecorderSink) Texts() []string {
	s.m.Lock()
	defer s.m.Unlock()
	return append([]string{}, s.texts...)
}

func (s *RecorderSink) Contexts() []context.Context {
	s.m.Lock()
	defer s.m.Unlock()
	return append([]context.Context{}, s.ctxs...)
}

func (s *RecorderSink) Len() int {
	s.m.Lock()
	defer s.m.Unlock()
	return len(s.texts)
}

func (s *RecorderSink) Reset() {
	s.m.Lock()
	defer s.m.Unlock()
	s.texts = nil
	s.ctxs = nil
}
