// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx_test

import (
	"context"

	"code.hybscloud.com/rx"
)

// collect subscribes and accumulates every emitted value.
// Used by invoker tests to observe the unified publisher contract
// without branching on which publisher shape was returned.
func collect(p rx.Publisher[any]) ([]any, error) {
	var out []any
	err := p.Subscribe(context.Background(), func(v any) bool {
		out = append(out, v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
