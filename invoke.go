// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"context"
	"fmt"
	"reflect"
)

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// InvokeSuspendingFunction invokes a suspending method reflectively and
// adapts its result into the publisher model.
//
// A suspending method declares context.Context as its first parameter
// after the receiver and may return (T, error), error, T, or nothing.
// args carries the caller-supplied positional arguments with a trailing
// reserved slot standing in for the context, which the invoker supplies
// itself at subscribe time; the receiver is placed first and the
// remaining arguments shift to start at index 1.
//
// The call runs lazily inside a single-value stream on the subscriber's
// goroutine (unconfined resumption). Unit results (struct{} or a
// value-less signature) yield an empty stream. A callee panic is
// recovered at the reflection boundary and unwrapped, so subscribers
// observe the original cause rather than the wrapper. If the declared
// first result is a receive-capable channel, the stream is flattened
// into a multi-value stream draining that channel in order.
//
// Panics if method has no valid func representation, is unexported
// (Go reflection cannot bridge accessibility), or is not suspending:
// these are caller configuration bugs, not runtime failures.
func InvokeSuspendingFunction(method reflect.Method, target any, args ...any) Publisher[any] {
	fn := method.Func
	if !fn.IsValid() {
		panic(fmt.Sprintf("rx: method %s has no func representation", method.Name))
	}
	if method.PkgPath != "" {
		panic(fmt.Sprintf("rx: method %s is unexported and cannot be invoked reflectively", method.Name))
	}
	mt := method.Type
	if mt.NumIn() < 2 || mt.In(1) != ctxType {
		panic(fmt.Sprintf("rx: method %s is not suspending: first parameter must be context.Context", method.Name))
	}

	callArgs := suspendCallArgs(target, args)
	mono := MonoFrom(func(ctx context.Context) (v any, ok bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				v, ok, err = nil, false, &PanicError{Value: r}
			}
		}()
		in := make([]reflect.Value, 0, mt.NumIn())
		in = append(in, callValue(callArgs[0], mt.In(0)))
		in = append(in, reflect.ValueOf(ctx))
		for i, a := range callArgs[1:] {
			in = append(in, callValue(a, mt.In(i+2)))
		}
		return decodeResults(mt, fn.Call(in))
	})
	mono = mono.Filter(notUnit).MapError(unwrapInvocation)

	if ret, ok := declaredResult(mt); ok && ret.Kind() == reflect.Chan && ret.ChanDir()&reflect.RecvDir != 0 {
		return FlatMapMany(mono, func(v any) *Flux[any] {
			return fluxFromReflectChannel(reflect.ValueOf(v))
		})
	}
	return mono
}

// suspendCallArgs places the receiver first and shifts the caller's
// arguments one position to start at index 1, dropping the trailing
// reserved slot. len(args) >= 1 is a caller-enforced precondition;
// violating it panics with the natural out-of-range failure.
func suspendCallArgs(target any, args []any) []any {
	out := make([]any, len(args))
	out[0] = target
	copy(out[1:], args[:len(args)-1])
	return out
}

// callValue converts a caller-supplied argument to the declared
// parameter type. nil maps to the parameter's zero value so untyped
// nils survive reflect.Call.
func callValue(a any, t reflect.Type) reflect.Value {
	if a == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(a)
}

// decodeResults maps the reflect call results onto the Mono outcome:
// a non-nil trailing error fails the stream, a value-less result list
// completes empty, otherwise the first result is emitted.
func decodeResults(mt reflect.Type, out []reflect.Value) (any, bool, error) {
	n := len(out)
	if n > 0 && mt.Out(n-1) == errType {
		if e := out[n-1]; !e.IsNil() {
			return nil, false, e.Interface().(error)
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, false, nil
	}
	return out[0].Interface(), true, nil
}

// declaredResult returns the method's declared value result type,
// excluding a sole error result.
func declaredResult(mt reflect.Type) (reflect.Type, bool) {
	if mt.NumOut() == 0 {
		return nil, false
	}
	ret := mt.Out(0)
	if mt.NumOut() == 1 && ret == errType {
		return nil, false
	}
	return ret, true
}

// notUnit rejects the unit sentinel so void-returning suspending calls
// yield an empty stream rather than a meaningless value.
func notUnit(v any) bool {
	_, unit := v.(struct{})
	return !unit
}

// fluxFromReflectChannel adapts a reflected channel value into a Flux
// that drains it in order until closed. ctx cancellation aborts the
// drain via reflect.Select.
func fluxFromReflectChannel(ch reflect.Value) *Flux[any] {
	return FluxFrom(func(ctx context.Context, next func(any) bool) error {
		cases := []reflect.SelectCase{
			{Dir: reflect.SelectRecv, Chan: ch},
			{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(ctx.Done())},
		}
		for {
			chosen, v, ok := reflect.Select(cases)
			if chosen == 1 {
				return ctx.Err()
			}
			if !ok {
				return nil
			}
			if !next(v.Interface()) {
				return nil
			}
		}
	})
}
