// Package debugkit provides iterator adapters that print the debug representation of every element
// while it passes through the iteration.
//
// # Summary
//
// When a pipeline of iterators misbehaves,
// the quickest way to understand it is to see what values flow between the steps.
// Wrapping a sequence with Debug prints each element to a diagnostic sink as it is pulled,
// and hands back the very same element to the consumer.
// The wrapped sequence stays lazy: nothing is printed until something iterates it,
// and nothing is printed once the source is exhausted.
//
//	seq = debugkit.DebugWithCaption(seq, "after filter")
//	// after filter: main.Person{Name:"Bob", Age:4}
//
// By default, the output goes to the standard error stream.
// When the module is built with the "debugkit_logging" build tag,
// the output goes to the frameless logging facade at debug level instead.
// Either can be overridden per adapter with the WithSink option.
package debugkit

import (
	"context"
	"iter"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Debug prints the compact debug representation of every element that is pulled from the sequence.
func Debug[T any](i iter.Seq[T], opts ...Option) iter.Seq[T] {
	return Seq(i, append([]Option{Compact()}, opts...)...)
}

// DebugPretty prints the multi-line, indented debug representation of every element.
func DebugPretty[T any](i iter.Seq[T], opts ...Option) iter.Seq[T] {
	return Seq(i, append([]Option{Pretty()}, opts...)...)
}

// DebugWithCaption prints "<caption>: <compact representation>" for every element.
func DebugWithCaption[T any](i iter.Seq[T], caption string, opts ...Option) iter.Seq[T] {
	return Seq(i, append([]Option{Compact(), Caption(caption)}, opts...)...)
}

// DebugWithCaptionPretty prints "<caption>: <pretty representation>" for every element.
func DebugWithCaptionPretty[T any](i iter.Seq[T], caption string, opts ...Option) iter.Seq[T] {
	return Seq(i, append([]Option{Pretty(), Caption(caption)}, opts...)...)
}

// Seq wraps an iter.Seq and emits every yielded value to the configured Sink.
// The values are passed to the consumer unchanged and in the same order.
//
// The returned sequence can be iterated again only if the source sequence can.
func Seq[T any](i iter.Seq[T], opts ...Option) iter.Seq[T] {
	c := option2Config(opts)
	return func(yield func(T) bool) {
		for v := range i {
			c.emit(v)
			if !yield(v) {
				return
			}
		}
	}
}

// SeqE wraps an iterkit.SeqE.
// Values that come with a nil error are emitted and passed on like with Seq.
// Errors are passed on untouched, without any emission.
func SeqE[T any](i iterkit.SeqE[T], opts ...Option) iterkit.SeqE[T] {
	c := option2Config(opts)
	return func(yield func(T, error) bool) {
		for v, err := range i {
			if err == nil {
				c.emit(v)
			}
			if !yield(v, err) {
				return
			}
		}
	}
}

func (c Config) emit(v any) {
	c.Sink.Emit(c.context(), c.Policy.Format(c.Renderer, v))
}

func (c Config) context() context.Context {
	if c.Context == nil {
		return context.Background()
	}
	return c.Context
}
