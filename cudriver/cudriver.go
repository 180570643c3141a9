// Package cudriver implements the cu.Driver and nvrtc.API boundaries on top
// of the native CUDA driver and NVRTC libraries, through cgo.
//
// The real implementation is only compiled with the "cuda" build tag (it
// links against libcuda and libnvrtc); without the tag New returns
// ErrNotBuilt, so the proxy packages stay importable and testable on machines
// without a CUDA toolkit.
package cudriver

import "github.com/pkg/errors"

// ErrNotBuilt indicates the binary was built without CUDA support.
var ErrNotBuilt = errors.New(`CUDA support requires building with "-tags cuda"`)
