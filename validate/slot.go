package validate

import "sync/atomic"

// Slot is the process-wide error handler cell of one strategy.
// It is meant to be written during application setup and read on every failed
// validation; reads and writes are safe for concurrent use.
type Slot[F error] struct {
	name string
	h    atomic.Pointer[ErrorHandler[F]]
}

// NewSlot creates an empty slot for the named strategy.
func NewSlot[F error](name string) *Slot[F] {
	return &Slot[F]{name: name}
}

// Name returns the strategy name the slot belongs to.
func (s *Slot[F]) Name() string {
	return s.name
}

// Set stores h, replacing any previous handler. A nil h clears the slot.
func (s *Slot[F]) Set(h ErrorHandler[F]) {
	if h == nil {
		s.h.Store(nil)
		return
	}
	s.h.Store(&h)
}

// Get returns the stored handler or nil.
func (s *Slot[F]) Get() ErrorHandler[F] {
	if p := s.h.Load(); p != nil {
		return *p
	}
	return nil
}

// Reset clears the slot.
func (s *Slot[F]) Reset() {
	s.h.Store(nil)
}
