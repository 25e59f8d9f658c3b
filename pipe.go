// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"context"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// pipeCapacity is the bounded capacity for the pipe ring buffer.
// 4 balances amortizing producer-side cached-index refresh cost while
// keeping the ring buffer within a single cache line.
const pipeCapacity = 4

// Pipe termination states.
const (
	pipeOpen = iota
	pipeComplete
	pipeFailed
)

// Pipe is a hot bounded publisher over a lock-free SPSC queue: one
// producer goroutine emits, one subscriber drains. Emission is
// non-blocking at the queue boundary ([Pipe.TryEmit] returns
// iox.ErrWouldBlock when the ring is full); [Pipe.Emit] waits past the
// boundary with adaptive backoff. The subscriber side is obtained once
// with [Pipe.Flux].
type Pipe[T any] struct {
	q     lfq.SPSC[T]
	state atomix.Uint32
	err   error
	slot  T
}

// NewPipe creates a pipe with the default bounded capacity.
func NewPipe[T any]() *Pipe[T] {
	p := &Pipe[T]{}
	p.q.Init(pipeCapacity)
	return p
}

// TryEmit enqueues v without blocking. Returns iox.ErrWouldBlock when
// the ring is full, or [ErrPipeClosed] after Close or Fail.
func (p *Pipe[T]) TryEmit(v T) error {
	if p.state.Load() != pipeOpen {
		return ErrPipeClosed
	}
	p.slot = v
	return p.q.Enqueue(&p.slot)
}

// Emit enqueues v, waiting past the full-ring boundary with adaptive
// backoff (iox.Backoff). Returns [ErrPipeClosed] after Close or Fail.
func (p *Pipe[T]) Emit(v T) error {
	var bo iox.Backoff
	for {
		err := p.TryEmit(v)
		if err == nil || err == ErrPipeClosed {
			return err
		}
		bo.Wait()
	}
}

// Close completes the pipe: the subscriber drains remaining values and
// then observes completion. Emission after Close fails. The producer
// calls Close or Fail at most once.
func (p *Pipe[T]) Close() {
	p.state.Add(pipeComplete)
}

// Fail terminates the pipe with err: the subscriber drains remaining
// values and then observes err as the stream error.
func (p *Pipe[T]) Fail(err error) {
	p.err = err
	p.state.Add(pipeFailed)
}

// Flux returns the subscriber side. The subscription drains the ring,
// waiting for the producer with adaptive backoff, until the pipe is
// closed and empty. Values already drained are not replayed by a later
// subscription. Single subscriber: the ring is single-consumer.
func (p *Pipe[T]) Flux() *Flux[T] {
	return FluxFrom(func(ctx context.Context, next func(T) bool) error {
		var bo iox.Backoff
		for {
			v, err := p.q.Dequeue()
			if err == nil {
				bo.Reset()
				if !next(v) {
					return nil
				}
				continue
			}
			// Empty. Re-check after observing the terminal state: the
			// producer enqueues before it closes, so one more dequeue
			// attempt is required to avoid dropping the tail.
			if s := p.state.Load(); s != pipeOpen {
				if v, err := p.q.Dequeue(); err == nil {
					if !next(v) {
						return nil
					}
					continue
				}
				if s == pipeFailed {
					return p.err
				}
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			bo.Wait()
		}
	})
}
