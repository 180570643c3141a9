//go:build !cuda

package cudriver

import (
	"github.com/gomlx/gocuda/cu"
	"github.com/gomlx/gocuda/nvrtc"
)

// Lib is a placeholder when CUDA support is not compiled in.
type Lib struct{}

// New returns ErrNotBuilt when CUDA support is not compiled in.
func New() (*Lib, error) {
	return nil, ErrNotBuilt
}

// Driver is never reached without CUDA support.
func (l *Lib) Driver() cu.Driver { return nil }

// NVRTC is never reached without CUDA support.
func (l *Lib) NVRTC() nvrtc.API { return nil }
