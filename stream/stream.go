package stream

import (
	"fmt"
	"sync"
)

// Stream is an unbounded queue handing values from producer goroutines to
// a single consumer. Values pushed after Close are dropped.
type Stream[T any] struct {
	name     string
	elements []T
	closed   bool
	*sync.Cond
}

func NewStream[T any](name string) *Stream[T] {
	return &Stream[T]{
		Cond: sync.NewCond(&sync.Mutex{}),
		name: name,
	}
}

func (s *Stream[T]) Push(msg T) {
	s.Cond.L.Lock()
	if !s.closed {
		s.elements = append(s.elements, msg)
	}
	s.Cond.Signal()
	s.Cond.L.Unlock()
}

// PullAll returns every pending value without blocking.
func (s *Stream[T]) PullAll() []T {
	s.Cond.L.Lock()
	msgs := s.elements
	s.elements = nil
	s.Cond.L.Unlock()
	return msgs
}

func (s *Stream[T]) Close() {
	s.Cond.L.Lock()
	s.closed = true
	s.Cond.Broadcast()
	s.Cond.L.Unlock()
}

func (s *Stream[T]) String() string {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	return fmt.Sprintf("Stream{Name: %q, Pending: %d, Closed: %v}", s.name, len(s.elements), s.closed)
}
