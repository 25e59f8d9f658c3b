// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"errors"
	"fmt"
)

// ErrPipeClosed is returned by [Pipe.TryEmit] and [Pipe.Emit] after the
// pipe has been closed or failed.
var ErrPipeClosed = errors.New("rx: pipe closed")

// PanicError wraps a panic recovered at an invocation boundary: a callee
// panic inside [InvokeSuspendingFunction], [Async], or a kont adapter.
// It is the reflection-layer wrapper around the callee's real failure.
type PanicError struct {
	Value any
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("rx: panic in suspending call: %v", e.Value)
}

// Unwrap exposes the panic payload when it is itself an error,
// so errors.Is and errors.As reach the callee's original failure.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// unwrapInvocation strips a [*PanicError] whose payload is an error,
// surfacing the callee's original failure instead of the wrapper.
// Other errors pass through untouched.
func unwrapInvocation(err error) error {
	var pe *PanicError
	if errors.As(err, &pe) {
		if cause, ok := pe.Value.(error); ok {
			return cause
		}
	}
	return err
}
