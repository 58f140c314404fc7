package sinks

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.Sink[any](&WriterSink[any]{})

// WriterSink is a sink that writes the values it receives to an io.Writer,
// one per line unless told otherwise. A failed write stops the traversal.
//
// Graphically, the WriterSink looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
// -- WriterSink --
// -> 1\n2\n3\n4\n5\n
type WriterSink[T any] struct {
	writer    io.Writer
	format    func(T) ([]byte, error)
	separator []byte
}

// WriterSinkBuilder is a fluent builder for WriterSink.
type WriterSinkBuilder[T any] struct {
	writer    io.Writer
	format    func(T) ([]byte, error)
	separator []byte
}

// Writer creates a new WriterSinkBuilder for building a WriterSink.
func Writer[T any](w io.Writer) *WriterSinkBuilder[T] {
	if w == nil {
		panic("writer cannot be nil")
	}

	return &WriterSinkBuilder[T]{
		writer:    w,
		format:    formatDefault[T],
		separator: []byte("\n"),
	}
}

// Format sets how a value is turned into bytes. Values are printed with
// their default format otherwise.
func (b *WriterSinkBuilder[T]) Format(
	format func(T) ([]byte, error),
) *WriterSinkBuilder[T] {
	if format != nil {
		b.format = format
	}
	return b
}

// Separator sets what is written after every value.
func (b *WriterSinkBuilder[T]) Separator(separator string) *WriterSinkBuilder[T] {
	b.separator = []byte(separator)
	return b
}

// Build creates the WriterSink.
func (b *WriterSinkBuilder[T]) Build() *WriterSink[T] {
	return &WriterSink[T]{
		writer:    b.writer,
		format:    b.format,
		separator: b.separator,
	}
}

// Handle writes the formatted value followed by the separator.
func (w *WriterSink[T]) Handle(value T) (bool, error) {
	data, err := w.format(value)
	if err != nil {
		return false, errors.Wrap(err, "format value")
	}

	data = append(data, w.separator...)
	if _, err := w.writer.Write(data); err != nil {
		return false, errors.Wrap(err, "write value")
	}

	return false, nil
}

func formatDefault[T any](value T) ([]byte, error) {
	return fmt.Appendf(nil, "%v", value), nil
}
