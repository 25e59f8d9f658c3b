// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"context"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Scope owns the lifetime of work spawned with [Async].
// A caller-created scope can be cancelled and joined; [GlobalScope]
// is process-wide and is neither.
type Scope struct {
	ctx      context.Context
	cancel   context.CancelFunc
	started  atomix.Uint32
	finished atomix.Uint32
}

// GlobalScope is the process-wide scope. Work attached to it runs until
// process exit: it is never cancelled or joined, so results that are
// never awaited are leaked by design. Prefer [NewScope] when the work
// has a natural owner.
var GlobalScope = &Scope{ctx: context.Background()}

// NewScope creates a caller-owned scope whose context derives from parent.
// Cancel the scope to cancel every task spawned on it.
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context returns the scope's context. Tasks spawned on the scope
// receive it and must honor its cancellation.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Cancel cancels the scope's context. No-op on [GlobalScope].
func (s *Scope) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Wait blocks until every task spawned so far has finished, waiting with
// adaptive backoff (iox.Backoff). Call after all Async calls on the
// scope have been issued; it does not observe tasks spawned concurrently
// with the wait.
func (s *Scope) Wait() {
	var bo iox.Backoff
	for s.finished.Load() < s.started.Load() {
		bo.Wait()
	}
}
