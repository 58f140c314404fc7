package helpers

import (
	"github.com/arielf-camacho/route-stream/primitives"
)

// Collector is a sink that collects the values it receives into a slice. It
// never reports done, so the traversal runs until the sequence is exhausted
// or the method stops it.
type Collector[T any] struct {
	items []T
	stop  func(T) bool
}

var _ = primitives.Sink[any](&Collector[any]{})

// NewCollector returns a new Collector.
func NewCollector[T any]() *Collector[T] {
	return &Collector[T]{}
}

// NewCollectorUntil returns a Collector reporting done right after it
// received a value matching stop.
func NewCollectorUntil[T any](stop func(T) bool) *Collector[T] {
	return &Collector[T]{stop: stop}
}

// Handle appends the value.
func (c *Collector[T]) Handle(value T) (bool, error) {
	c.items = append(c.items, value)
	return c.stop != nil && c.stop(value), nil
}

// Items returns the items collected by the Collector.
func (c *Collector[T]) Items() []T {
	return c.items
}
