package cu

import (
	"math"

	"github.com/pkg/errors"
)

// CachePreference is a coarse-grained hint to the scheduler about the
// carve-out between L1 cache and shared memory on multiprocessors where the
// two use the same hardware resources. Values match the driver's CUfunc_cache.
type CachePreference uint32

const (
	// CachePreferNone uses the device default.
	CachePreferNone CachePreference = 0
	// CachePreferShared favors shared memory over L1 cache.
	CachePreferShared CachePreference = 1
	// CachePreferL1 favors L1 cache over shared memory.
	CachePreferL1 CachePreference = 2
	// CachePreferEqual splits the resources evenly.
	CachePreferEqual CachePreference = 3
)

// SharedMemBankSize selects the shared-memory bank width used when launching
// a kernel. Values match the driver's CUsharedconfig.
type SharedMemBankSize uint32

const (
	SharedMemBankSizeDefault   SharedMemBankSize = 0
	SharedMemBankSizeFourByte  SharedMemBankSize = 1
	SharedMemBankSizeEightByte SharedMemBankSize = 2
)

// Kernel wraps a handle to a compiled device function.
//
// A Kernel is always non-owning: the function's lifetime is tied to the
// module (or runtime-compiled program) it came from, so Kernels are plain
// values that may be freely copied. Mutator methods change driver-side kernel
// state, never the proxy itself.
type Kernel struct {
	drv    Driver
	device Device
	ctx    ContextHandle
	handle FunctionHandle
}

// WrapKernel obtains a proxy for a compiled device function. This is the only
// construction path: a kernel has no independent existence apart from the
// module that produced it, so nothing is created or owned here.
func WrapKernel(ctx *Context, handle FunctionHandle) Kernel {
	return Kernel{drv: ctx.drv, device: ctx.device, ctx: ctx.handle, handle: handle}
}

// Device returns the raw CUDA ID of the device the function was loaded on.
func (k Kernel) Device() Device { return k.device }

// ContextHandle returns the handle of the context the function lives in.
func (k Kernel) ContextHandle() ContextHandle { return k.ctx }

// Handle returns the raw function handle.
func (k Kernel) Handle() FunctionHandle { return k.handle }

// GetAttribute reads a numeric property of the compiled function.
func (k Kernel) GetAttribute(attribute FuncAttribute) (int32, error) {
	var value int32
	err := inContext(k.drv, k.ctx, func() error {
		var status Status
		value, status = k.drv.FuncGetAttribute(k.handle, attribute)
		return statusToError(status, "failed obtaining attribute "+attribute.describe()+" of "+k.identify())
	})
	return value, err
}

// SetAttribute writes a numeric property of the compiled function. Only some
// attributes are writable; the driver rejects the others.
func (k Kernel) SetAttribute(attribute FuncAttribute, value int32) error {
	return inContext(k.drv, k.ctx, func() error {
		status := k.drv.FuncSetAttribute(k.handle, attribute, value)
		return statusToError(status, "failed setting attribute "+attribute.describe()+" of "+k.identify())
	})
}

// MaxThreadsPerBlock returns the largest block size the device can satisfy
// for this kernel's hardware requirements (typically register use). The
// kernel may have other constraints not visible through this attribute.
func (k Kernel) MaxThreadsPerBlock() (int, error) {
	value, err := k.GetAttribute(FuncAttributeMaxThreadsPerBlock)
	return int(value), err
}

// StaticSharedMemorySize returns the statically-allocated shared memory, in
// bytes, required by each block of this kernel.
func (k Kernel) StaticSharedMemorySize() (int, error) {
	value, err := k.GetAttribute(FuncAttributeSharedSizeBytes)
	return int(value), err
}

// NumRegisters returns the number of registers used by each thread.
func (k Kernel) NumRegisters() (int, error) {
	value, err := k.GetAttribute(FuncAttributeNumRegs)
	return int(value), err
}

// PTXVersion returns the virtual architecture the kernel code was compiled
// into.
func (k Kernel) PTXVersion() (ComputeCapability, error) {
	value, err := k.GetAttribute(FuncAttributePTXVersion)
	return ccFromCombined(value), err
}

// BinaryVersion returns the binary architecture the function was compiled
// for.
func (k Kernel) BinaryVersion() (ComputeCapability, error) {
	value, err := k.GetAttribute(FuncAttributeBinaryVersion)
	return ccFromCombined(value), err
}

// SetMaxDynamicSharedMemoryPerBlock opts the kernel in to using at least the
// given amount of dynamic shared memory per block, adjusting the L1/shared
// carve-out if needed. The amount is range-checked against the attribute's
// native type before the call: an unrepresentable value fails with
// ErrValueOutOfRange rather than being truncated.
func (k Kernel) SetMaxDynamicSharedMemoryPerBlock(bytes uint64) error {
	if bytes > math.MaxInt32 {
		return errors.Wrapf(ErrValueOutOfRange,
			"cannot request %d bytes of maximum dynamic shared memory for %s", bytes, k.identify())
	}
	return k.SetAttribute(FuncAttributeMaxDynamicSharedSizeBytes, int32(bytes))
}

// SetCachePreference indicates the desired L1-cache/shared-memory carve-out
// for launches of this kernel.
func (k Kernel) SetCachePreference(preference CachePreference) error {
	return inContext(k.drv, k.ctx, func() error {
		status := k.drv.FuncSetCacheConfig(k.handle, preference)
		return statusToError(status,
			"failed setting the L1/shared-memory cache preference for "+k.identify())
	})
}

// SetSharedMemoryBankSize sets the kernel's preferred shared-memory bank
// width.
func (k Kernel) SetSharedMemoryBankSize(config SharedMemBankSize) error {
	return inContext(k.drv, k.ctx, func() error {
		status := k.drv.FuncSetSharedMemConfig(k.handle, config)
		return statusToError(status, "failed setting the shared memory bank size for "+k.identify())
	})
}

// String implements fmt.Stringer.
func (k Kernel) String() string { return k.identify() }

func (k Kernel) identify() string {
	return identifyKernel(k.handle, k.ctx, k.device)
}
