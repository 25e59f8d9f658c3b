// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"context"

	"code.hybscloud.com/kont"
)

// EffToMono runs a Cont-world suspendable computation as a cold Mono.
// Evaluation is deferred to subscribe time and happens inline on the
// subscriber's goroutine via kont.Handle with the given handler
// (unconfined resumption). A panic during evaluation, including a
// handler panic on an unhandled effect, fails the stream with a
// [*PanicError].
func EffToMono[A any, H kont.Handler[H, A]](m kont.Eff[A], h H) *Mono[A] {
	return MonoFrom(func(context.Context) (v A, ok bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				var zero A
				v, ok, err = zero, false, &PanicError{Value: r}
			}
		}()
		return kont.Handle(m, h), true, nil
	})
}

// ExprToMono runs an Expr-world suspendable computation as a cold Mono.
// Evaluation is deferred to subscribe time via kont.HandleExpr.
func ExprToMono[A any, H kont.Handler[H, A]](m kont.Expr[A], h H) *Mono[A] {
	return MonoFrom(func(context.Context) (v A, ok bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				var zero A
				v, ok, err = zero, false, &PanicError{Value: r}
			}
		}()
		return kont.HandleExpr(m, h), true, nil
	})
}

// EffToDeferred starts a Cont-world suspendable computation eagerly on
// the scope and returns its eventual result. Evaluation begins
// immediately on the spawned goroutine, independent of whether the
// handle is ever awaited.
func EffToDeferred[A any, H kont.Handler[H, A]](scope *Scope, m kont.Eff[A], h H) *Deferred[A] {
	return Async(scope, func(context.Context) (A, error) {
		return kont.Handle(m, h), nil
	})
}
