// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rx bridges suspendable single-shot computations and reactive
// publishers.
//
// One side of the bridge is the eventual-result world: [Deferred] handles
// produced by [Async], and suspendable computations from
// [code.hybscloud.com/kont]. The other side is the publisher world: cold
// [Mono] (at most one value) and [Flux] (zero or more values), unified
// under the [Publisher] contract.
//
// # Architecture
//
//   - Unconfined resumption: subscription work runs inline on the
//     subscriber's goroutine, and completions are observed on whichever
//     goroutine produced them. Nothing re-dispatches to a dedicated worker.
//   - Non-blocking boundaries: [Deferred.Poll] and [Pipe.TryEmit] return
//     [code.hybscloud.com/iox.ErrWouldBlock]; blocking forms wait with
//     adaptive backoff (iox.Backoff).
//   - Transport: [Pipe] is a hot bounded publisher over a lock-free SPSC
//     queue from [code.hybscloud.com/lfq].
//   - Cancellation: every blocking operation takes a context and aborts
//     with ctx.Err() when it is cancelled.
//
// # API Topologies
//
//   - Adapters: [DeferredToMono] (lazy), [MonoToDeferred] and
//     [MonoToDeferredIn] (eager, scope-attached), [EffToMono], [ExprToMono],
//     [EffToDeferred].
//   - Invocation: [InvokeSuspendingFunction] calls a reflective suspending
//     method and adapts its result into a [Publisher].
//   - Scopes: [GlobalScope] for process-lifetime work, [NewScope] for
//     caller-owned lifetimes with [Scope.Cancel] and [Scope.Wait].
//
// # Example
//
//	d := rx.Async(rx.GlobalScope, func(ctx context.Context) (int, error) {
//		return 42, nil
//	})
//	m := rx.DeferredToMono(d)
//	v, ok, err := m.Await(context.Background())
package rx
