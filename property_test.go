// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx_test

import (
	"context"
	"testing"
	"testing/quick"

	"code.hybscloud.com/rx"
)

// TestPropertyRoundTripValue proves that for any value, converting a
// resolved result to a stream and back yields an equal resolved value.
func TestPropertyRoundTripValue(t *testing.T) {
	scope := rx.NewScope(context.Background())
	defer scope.Wait()

	roundTrip := func(v int64) bool {
		d := rx.MonoToDeferredIn(scope, rx.DeferredToMono(rx.DeferredOf(v)))
		got, err := d.Await(context.Background())
		return err == nil && got == v
	}
	if err := quick.Check(roundTrip, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyPipeFIFO proves that for any arbitrarily generated payload,
// the pipe delivers strict FIFO without loss, duplication, or reordering.
func TestPropertyPipeFIFO(t *testing.T) {
	skipRace(t)

	propertyFIFO := func(payload []int) bool {
		p := rx.NewPipe[int]()
		go func() {
			for _, v := range payload {
				p.Emit(v)
			}
			p.Close()
		}()

		received, err := p.Flux().Collect(context.Background())
		if err != nil {
			return false
		}
		if len(received) != len(payload) {
			return false
		}
		for i, v := range received {
			if v != payload[i] {
				return false
			}
		}
		return true
	}
	if err := quick.Check(propertyFIFO, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyInvokeShift proves the receiver-first argument shift for
// arbitrary inputs: the receiver's state and the shifted argument both
// reach the callee.
func TestPropertyInvokeShift(t *testing.T) {
	m := methodOf(t, "Greet")
	propertyShift := func(prefix, name string) bool {
		g := &greeter{prefix: prefix}
		p := rx.InvokeSuspendingFunction(m, g, name, nil)
		got, err := collect(p)
		return err == nil && len(got) == 1 && got[0] == prefix+", "+name
	}
	if err := quick.Check(propertyShift, nil); err != nil {
		t.Error(err)
	}
}
