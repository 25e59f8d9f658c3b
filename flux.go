// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"context"
)

// Flux is a cold multi-value publisher: on each subscription it emits
// zero or more values in order, then completes or fails. The source runs
// inline on the subscriber's goroutine.
type Flux[T any] struct {
	source func(ctx context.Context, next func(T) bool) error
}

// FluxFrom creates a Flux from a source function. The source must honor
// ctx cancellation and stop when next returns false.
func FluxFrom[T any](source func(ctx context.Context, next func(T) bool) error) *Flux[T] {
	return &Flux[T]{source: source}
}

// FluxOf creates a Flux that emits vs in order and completes.
func FluxOf[T any](vs ...T) *Flux[T] {
	return FluxFrom(func(_ context.Context, next func(T) bool) error {
		for _, v := range vs {
			if !next(v) {
				return nil
			}
		}
		return nil
	})
}

// FluxFromChannel creates a Flux that drains ch until it is closed.
// Each subscription resumes draining wherever the previous one stopped;
// values already taken from ch are not replayed.
func FluxFromChannel[T any](ch <-chan T) *Flux[T] {
	return FluxFrom(func(ctx context.Context, next func(T) bool) error {
		for {
			select {
			case v, ok := <-ch:
				if !ok {
					return nil
				}
				if !next(v) {
					return nil
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})
}

// Subscribe implements [Publisher].
func (f *Flux[T]) Subscribe(ctx context.Context, next func(T) bool) error {
	return f.source(ctx, next)
}

// Collect subscribes and accumulates every emitted value in order.
func (f *Flux[T]) Collect(ctx context.Context) ([]T, error) {
	var out []T
	err := f.source(ctx, func(v T) bool {
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
