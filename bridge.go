// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"context"
)

// DeferredToMono converts a single eventual result to a single-value
// publisher. The Mono is cold: nothing is awaited before subscription,
// and each subscription awaits inline on the subscriber's goroutine
// (unconfined resumption, no extra scheduling hop). A failed Deferred
// becomes the stream error; cancelling the subscription context aborts
// the await without affecting the underlying computation's cached result.
func DeferredToMono[T any](d *Deferred[T]) *Mono[T] {
	return MonoFrom(func(ctx context.Context) (T, bool, error) {
		v, err := d.Await(ctx)
		if err != nil {
			var zero T
			return zero, false, err
		}
		return v, true, nil
	})
}

// MonoToDeferred converts a single-value publisher to an eagerly started
// eventual result on [GlobalScope]. The subscription begins immediately
// upon return and runs to completion whether or not the handle is ever
// awaited; the outcome is cached in the handle. An empty Mono resolves
// to the zero value of T.
//
// Work attached to GlobalScope lives until process exit. Use
// [MonoToDeferredIn] to bind the subscription to a caller-owned lifetime.
func MonoToDeferred[T any](m *Mono[T]) *Deferred[T] {
	return MonoToDeferredIn(GlobalScope, m)
}

// MonoToDeferredIn is [MonoToDeferred] with an explicit scope: the eager
// subscription runs with the scope's context and is joined by
// [Scope.Wait] and cancelled by [Scope.Cancel].
func MonoToDeferredIn[T any](scope *Scope, m *Mono[T]) *Deferred[T] {
	return Async(scope, func(ctx context.Context) (T, error) {
		v, _, err := m.Await(ctx)
		return v, err
	})
}
