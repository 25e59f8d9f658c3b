// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"context"
)

// Mono is a cold single-value publisher: on each subscription it produces
// at most one value, or an error, then completes. The source runs inline
// on the subscriber's goroutine; nothing happens before subscription.
type Mono[T any] struct {
	source func(ctx context.Context) (T, bool, error)
}

// MonoFrom creates a Mono from a source function. The source is invoked
// once per subscription; a false second result means the Mono is empty.
func MonoFrom[T any](source func(ctx context.Context) (T, bool, error)) *Mono[T] {
	return &Mono[T]{source: source}
}

// MonoOf creates a Mono that emits v and completes.
func MonoOf[T any](v T) *Mono[T] {
	return MonoFrom(func(context.Context) (T, bool, error) {
		return v, true, nil
	})
}

// MonoEmpty creates a Mono that completes without emitting.
func MonoEmpty[T any]() *Mono[T] {
	return MonoFrom(func(context.Context) (T, bool, error) {
		var zero T
		return zero, false, nil
	})
}

// MonoError creates a Mono that fails with err.
func MonoError[T any](err error) *Mono[T] {
	return MonoFrom(func(context.Context) (T, bool, error) {
		var zero T
		return zero, false, err
	})
}

// Subscribe implements [Publisher]. The source runs on the calling
// goroutine; next is invoked at most once.
func (m *Mono[T]) Subscribe(ctx context.Context, next func(T) bool) error {
	v, ok, err := m.source(ctx)
	if err != nil {
		return err
	}
	if ok {
		next(v)
	}
	return nil
}

// Await subscribes and blocks for the outcome. Returns (value, true, nil)
// on emission, (zero, false, nil) on empty completion, or the stream error.
func (m *Mono[T]) Await(ctx context.Context) (T, bool, error) {
	return m.source(ctx)
}

// Filter drops the emitted value when pred rejects it, turning the
// subscription into an empty completion. Errors pass through.
func (m *Mono[T]) Filter(pred func(T) bool) *Mono[T] {
	return MonoFrom(func(ctx context.Context) (T, bool, error) {
		v, ok, err := m.source(ctx)
		if err != nil || !ok {
			return v, ok, err
		}
		if !pred(v) {
			var zero T
			return zero, false, nil
		}
		return v, true, nil
	})
}

// MapError rewrites the stream error through f. Values and empty
// completions pass through untouched.
func (m *Mono[T]) MapError(f func(error) error) *Mono[T] {
	return MonoFrom(func(ctx context.Context) (T, bool, error) {
		v, ok, err := m.source(ctx)
		if err != nil {
			return v, ok, f(err)
		}
		return v, ok, nil
	})
}

// FlatMapMany flattens a Mono into the Flux produced from its value.
// An empty Mono flattens to an empty Flux; a Mono error becomes the
// Flux error. The inner Flux is built and drained at subscribe time.
func FlatMapMany[T, U any](m *Mono[T], f func(T) *Flux[U]) *Flux[U] {
	return FluxFrom(func(ctx context.Context, next func(U) bool) error {
		v, ok, err := m.source(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		return f(v).Subscribe(ctx, next)
	})
}
