// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx_test

import (
	"context"
	"errors"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/rx"
)

// ask is the effect operation for reading a value from the handler.
type ask struct {
	kont.Phantom[int]
}

// askHandler answers ask effects with a fixed value, counting dispatches.
type askHandler struct {
	v          int
	dispatched *int
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h askHandler) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if _, ok := op.(ask); ok {
		*h.dispatched++
		return h.v, true
	}
	panic("rx_test: unhandled effect in askHandler")
}

func askDouble() kont.Eff[int] {
	return kont.Bind(kont.Perform(ask{}), func(n int) kont.Eff[int] {
		return kont.Pure(n * 2)
	})
}

func TestEffToMonoEvaluates(t *testing.T) {
	dispatched := 0
	h := askHandler{v: 21, dispatched: &dispatched}

	m := rx.EffToMono(askDouble(), h)
	if dispatched != 0 {
		t.Fatalf("effect dispatched %d times before subscription, want 0", dispatched)
	}

	v, ok, err := m.Await(context.Background())
	if err != nil || !ok {
		t.Fatalf("await = (%v, %v), want value", ok, err)
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
	if dispatched != 1 {
		t.Fatalf("effect dispatched %d times, want 1", dispatched)
	}
}

func TestExprToMonoEvaluates(t *testing.T) {
	dispatched := 0
	h := askHandler{v: 5, dispatched: &dispatched}

	m := rx.ExprToMono(kont.Reify(askDouble()), h)
	v, ok, err := m.Await(context.Background())
	if err != nil || !ok {
		t.Fatalf("await = (%v, %v), want value", ok, err)
	}
	if v != 10 {
		t.Fatalf("got %d, want 10", v)
	}
}

func TestEffToDeferredStartsEagerly(t *testing.T) {
	dispatched := 0
	h := askHandler{v: 1, dispatched: &dispatched}
	scope := rx.NewScope(context.Background())

	d := rx.EffToDeferred(scope, askDouble(), h)
	scope.Wait()
	if dispatched != 1 {
		t.Fatalf("effect dispatched %d times after join, want 1", dispatched)
	}
	if v, err := d.Poll(); err != nil || v != 2 {
		t.Fatalf("poll = (%d, %v), want (2, nil)", v, err)
	}
}

func TestEffToMonoUnhandledEffectFails(t *testing.T) {
	// A handler panic on an unhandled effect surfaces as the stream
	// error, wrapped at the evaluation boundary.
	type other struct {
		kont.Phantom[int]
	}
	dispatched := 0
	h := askHandler{v: 0, dispatched: &dispatched}

	m := rx.EffToMono(kont.Perform(other{}), h)
	_, _, err := m.Await(context.Background())
	var pe *rx.PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("got error %v, want *rx.PanicError", err)
	}
}
