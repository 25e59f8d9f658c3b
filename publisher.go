// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"context"
)

// Publisher is the unified subscription contract for [Mono] and [Flux].
// A subscription may observe zero values, one value, or a sequence,
// so callers never branch on which publisher shape they received.
type Publisher[T any] interface {
	// Subscribe runs the publisher to completion on the calling goroutine
	// (unconfined resumption: no dispatch to a dedicated worker).
	// next is called once per emitted value; returning false stops
	// consumption early. A non-nil return is the stream error; ctx
	// cancellation aborts with ctx.Err().
	Subscribe(ctx context.Context, next func(T) bool) error
}
