package debugkit

import (
	"go.llib.dev/frameless/pkg/iterkit"
)

// Pull wraps an iterkit.PullIter.
// Every successful Next call emits the pulled value once.
// After the source reports that it has no more values, the adapter stays exhausted,
// and later Next calls return false without calling the source again.
func Pull[T any](i iterkit.PullIter[T], opts ...Option) iterkit.PullIter[T] {
	return &pullIter[T]{src: i, conf: option2Config(opts)}
}

type pullIter[T any] struct {
	src       iterkit.PullIter[T]
	conf      Config
	value     T
	exhausted bool
}

func (i *pullIter[T]) Next() bool {
	if i.exhausted {
		return false
	}
	if !i.src.Next() {
		i.exhausted = true
		var zero T
		i.value = zero
		return false
	}
	i.value = i.src.Value()
	i.conf.emit(i.value)
	return true
}

func (i *pullIter[T]) Value() T {
	return i.value
}

func (i *pullIter[T]) Err() error {
	return i.src.Err()
}

func (i *pullIter[T]) Close() error {
	return i.src.Close()
}
