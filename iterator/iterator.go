package iterator

import (
	"io"

	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"
)

// Iterator produces values until it is exhausted.
// Once Next has returned false it must keep returning false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// CloseIterator is an Iterator that holds a resource released by Close.
type CloseIterator[T any] interface {
	Iterator[T]
	io.Closer
}

// closeAll closes every source that implements io.Closer.
func closeAll(sources ...any) error {
	var err error
	for _, source := range sources {
		if closer, ok := source.(io.Closer); ok {
			err = multierr.Append(err, closer.Close())
		}
	}
	return err
}

type SliceIterator[T any] struct {
	items []T
	idx   int
}

func NewSliceIterator[T any](items []T) *SliceIterator[T] {
	return &SliceIterator[T]{
		items: items,
		idx:   0,
	}
}

func (i *SliceIterator[T]) Next() (T, bool) {
	if i.idx < len(i.items) {
		i.idx += 1
		return i.items[i.idx-1], true
	} else {
		return *new(T), false
	}
}

// Pair holds one value from each side of a Zip.
type Pair[A any, B any] struct {
	First  A
	Second B
}

type zipIterator[A any, B any] struct {
	first  Iterator[A]
	second Iterator[B]
	done   bool
}

// Zip yields pairs until either side is exhausted.
// The first iterator is always advanced before the second.
func Zip[A any, B any](first Iterator[A], second Iterator[B]) CloseIterator[Pair[A, B]] {
	return &zipIterator[A, B]{first: first, second: second}
}

func (z *zipIterator[A, B]) Next() (Pair[A, B], bool) {
	if z.done {
		return Pair[A, B]{}, false
	}
	a, ok := z.first.Next()
	if !ok {
		z.done = true
		return Pair[A, B]{}, false
	}
	b, ok := z.second.Next()
	if !ok {
		z.done = true
		return Pair[A, B]{}, false
	}
	return Pair[A, B]{First: a, Second: b}, true
}

func (z *zipIterator[A, B]) Close() error {
	return closeAll(z.first, z.second)
}

type skipIterator[T any] struct {
	source    Iterator[T]
	remaining int
}

// Skip discards the first n values of source.
func Skip[T any](source Iterator[T], n int) CloseIterator[T] {
	return &skipIterator[T]{source: source, remaining: n}
}

func (s *skipIterator[T]) Next() (T, bool) {
	for ; s.remaining > 0; s.remaining-- {
		if _, ok := s.source.Next(); !ok {
			s.remaining = 0
			return *new(T), false
		}
	}
	return s.source.Next()
}

func (s *skipIterator[T]) Close() error {
	return closeAll(s.source)
}

type mapIterator[T any, U any] struct {
	source Iterator[T]
	mapper func(T) U
}

// Map applies mapper to each value of source.
func Map[T any, U any](source Iterator[T], mapper func(T) U) CloseIterator[U] {
	return &mapIterator[T, U]{source: source, mapper: mapper}
}

func (m *mapIterator[T, U]) Next() (U, bool) {
	v, ok := m.source.Next()
	if !ok {
		return *new(U), false
	}
	return m.mapper(v), true
}

func (m *mapIterator[T, U]) Close() error {
	return closeAll(m.source)
}

type filterIterator[T any] struct {
	source    Iterator[T]
	predicate func(T) bool
}

// Filter yields only the values of source for which predicate holds.
func Filter[T any](source Iterator[T], predicate func(T) bool) CloseIterator[T] {
	return &filterIterator[T]{source: source, predicate: predicate}
}

func (f *filterIterator[T]) Next() (T, bool) {
	for {
		v, ok := f.source.Next()
		if !ok {
			return *new(T), false
		}
		if f.predicate(v) {
			return v, true
		}
	}
}

func (f *filterIterator[T]) Close() error {
	return closeAll(f.source)
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	result := make([]T, 0)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		result = append(result, v)
	}
	return result
}

// Sum drains it and adds up every value.
func Sum[T constraints.Integer | constraints.Float](it Iterator[T]) T {
	var total T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		total += v
	}
	return total
}
