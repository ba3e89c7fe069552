// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/ffi"
)

func init() {
	backend.Register(backend.BackendSoftware, func() ffi.Library { return New() })
}
