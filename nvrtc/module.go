package nvrtc

import (
	"github.com/gomlx/gocuda/cu"
	"github.com/pkg/errors"
)

// CreateModule materializes a compiled program as a loaded module in the
// given context, from which kernels can be obtained by (mangled) name.
//
// The image kind is a static decision on the toolkit version, not a
// retry-on-failure: toolkits that can load binary images directly get the
// CUBIN, older ones get the PTX and JIT it at load time. A program compiled
// for a virtual architecture only always goes through the PTX path.
func CreateModule(ctx *cu.Context, program *Program, options cu.LinkOptions) (*cu.Module, error) {
	caps, err := cu.DriverCapabilities(ctx.Driver())
	if err != nil {
		return nil, err
	}
	var image []byte
	if caps.ModuleFromCUBIN && !program.virtualTargetOnly {
		image, err = program.CUBIN()
	} else {
		image, err = program.PTX()
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "while materializing %s as a module in %s",
			program.identify(), ctx)
	}
	return cu.CreateModuleFromImage(ctx, image, options)
}
