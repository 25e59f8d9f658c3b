// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"context"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Deferred completion states.
const (
	statePending = iota
	stateResolved
	stateFailed
)

// Deferred is a single eventual result: it resolves with one value or
// fails with one error, exactly once, and caches the outcome for every
// later await. Handles are produced eagerly by [Async] (the computation
// runs whether or not the result is awaited) or pre-completed by
// [DeferredOf] and [DeferredError].
type Deferred[T any] struct {
	state  atomix.Uint32
	done   chan struct{}
	value  T
	err    error
	serial Serial
}

// Async spawns f on the scope and returns its Deferred result.
// The task starts immediately, runs on its own goroutine with the
// scope's context, and completes the handle whether or not anyone
// awaits it. A panic in f fails the handle with a [*PanicError].
func Async[T any](scope *Scope, f func(ctx context.Context) (T, error)) *Deferred[T] {
	d := &Deferred[T]{
		done:   make(chan struct{}),
		serial: nextSerial(),
	}
	scope.started.Add(1)
	go func() {
		defer scope.finished.Add(1)
		defer func() {
			if r := recover(); r != nil {
				d.fail(&PanicError{Value: r})
			}
		}()
		v, err := f(scope.ctx)
		if err != nil {
			d.fail(err)
			return
		}
		d.resolve(v)
	}()
	return d
}

// DeferredOf returns an already-resolved handle.
func DeferredOf[T any](v T) *Deferred[T] {
	d := &Deferred[T]{done: make(chan struct{}), serial: nextSerial()}
	d.resolve(v)
	return d
}

// DeferredError returns an already-failed handle.
func DeferredError[T any](err error) *Deferred[T] {
	d := &Deferred[T]{done: make(chan struct{}), serial: nextSerial()}
	d.fail(err)
	return d
}

// resolve completes the handle with a value. Outcome fields are written
// before the state store so Poll readers observe them.
func (d *Deferred[T]) resolve(v T) {
	d.value = v
	d.state.Add(stateResolved)
	close(d.done)
}

// fail completes the handle with an error.
func (d *Deferred[T]) fail(err error) {
	d.err = err
	d.state.Add(stateFailed)
	close(d.done)
}

// Serial returns the serial number assigned to this handle.
func (d *Deferred[T]) Serial() Serial {
	return d.serial
}

// Done returns a channel closed when the handle completes.
func (d *Deferred[T]) Done() <-chan struct{} {
	return d.done
}

// Poll is the non-blocking await: it returns iox.ErrWouldBlock while the
// computation is still pending, and the cached outcome once it completed.
func (d *Deferred[T]) Poll() (T, error) {
	switch d.state.Load() {
	case stateResolved:
		return d.value, nil
	case stateFailed:
		var zero T
		return zero, d.err
	}
	var zero T
	return zero, iox.ErrWouldBlock
}

// Await blocks until the handle completes or ctx is cancelled.
// Awaiting resumes on the goroutine that called Await (unconfined);
// repeated awaits return the cached outcome.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-d.done:
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
	return d.Poll()
}
