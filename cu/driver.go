package cu

import "sync"

// BlockToDynSMemFunc maps a candidate block size to the dynamic shared-memory
// bytes the kernel would need at that block size.
//
// The underlying driver search primitive accepts a plain function pointer
// with no per-call closure state, so the cudriver implementation carries the
// Go function through a single registered trampoline and serializes
// concurrent searches. Implementations should be pure functions of their
// argument.
type BlockToDynSMemFunc func(blockSize int) uint64

// Driver is the narrow boundary to the native CUDA driver API. Every method
// corresponds to one native call and returns the raw Status; translation into
// identity-qualified errors happens in the proxies.
//
// Device enumeration, memory allocation and context/stream creation are
// deliberately absent: they belong to the surrounding application.
type Driver interface {
	// Version returns the toolkit version the driver was built against.
	Version() (Version, Status)

	// DeviceComputeCapability returns the compute capability of a device.
	DeviceComputeCapability(device Device) (ComputeCapability, Status)

	// CtxPushCurrent makes ctx current for the calling OS thread, pushing it
	// onto the thread's context stack.
	CtxPushCurrent(ctx ContextHandle) Status

	// CtxPopCurrent pops the calling OS thread's current context, restoring
	// the previous one, and returns the popped handle.
	CtxPopCurrent() (ContextHandle, Status)

	// CtxGetCurrent returns the calling OS thread's current context, or 0 if
	// none is current.
	CtxGetCurrent() (ContextHandle, Status)

	// CtxGetDevice returns the device of the calling OS thread's current
	// context.
	CtxGetDevice() (Device, Status)

	EventCreate(flags EventFlags) (EventHandle, Status)
	EventRecord(event EventHandle, stream StreamHandle) Status
	EventQuery(event EventHandle) Status
	EventSynchronize(event EventHandle) Status
	EventDestroy(event EventHandle) Status

	// EventElapsedTime returns the milliseconds elapsed between the firing of
	// two events created with timing enabled.
	EventElapsedTime(start, end EventHandle) (float32, Status)

	StreamSynchronize(stream StreamHandle) Status

	FuncGetAttribute(fn FunctionHandle, attribute FuncAttribute) (int32, Status)
	FuncSetAttribute(fn FunctionHandle, attribute FuncAttribute, value int32) Status
	FuncSetCacheConfig(fn FunctionHandle, preference CachePreference) Status
	FuncSetSharedMemConfig(fn FunctionHandle, config SharedMemBankSize) Status

	// OccupancyMaxPotentialBlockSize searches for the block size maximizing
	// occupancy. Exactly one of blockSizeToDynSMem (see BlockToDynSMemFunc)
	// and fixedDynSMem is consulted: the function when non-nil, the fixed
	// size otherwise. A blockSizeLimit of 0 means no limit.
	OccupancyMaxPotentialBlockSize(fn FunctionHandle, blockSizeToDynSMem BlockToDynSMemFunc,
		fixedDynSMem uint64, blockSizeLimit int, disableCachingOverride bool) (minGridSize, blockSize int, status Status)

	OccupancyMaxActiveBlocksPerMultiprocessor(fn FunctionHandle, blockSize int,
		dynSMemPerBlock uint64, disableCachingOverride bool) (int, Status)

	OccupancyAvailableDynamicSMemPerBlock(fn FunctionHandle,
		blocksOnMultiprocessor, blockSize int) (uint64, Status)

	// ModuleLoadData loads a module from a compiled image (CUBIN, PTX or
	// fatbin) into the calling OS thread's current context.
	ModuleLoadData(image []byte, options []JITOption) (ModuleHandle, Status)
	ModuleGetFunction(module ModuleHandle, name string) (FunctionHandle, Status)
	ModuleUnload(module ModuleHandle) Status
}

// JITOptionID selects a just-in-time link/load option. Values match the
// driver's CUjit_option.
type JITOptionID uint32

const (
	JITMaxRegisters      JITOptionID = 0
	JITGenerateDebugInfo JITOptionID = 11
	JITLogVerbose        JITOptionID = 12
	JITGenerateLineInfo  JITOptionID = 13
)

// JITOption is one marshaled link/load option pair.
type JITOption struct {
	ID    JITOptionID
	Value uint64
}

var (
	capsMu    sync.Mutex
	capsCache = make(map[Driver]Capabilities)
)

// DriverCapabilities returns the version-gated capability set of a Driver.
// The driver's version is queried once and the result cached for the lifetime
// of the process.
func DriverCapabilities(drv Driver) (Capabilities, error) {
	capsMu.Lock()
	defer capsMu.Unlock()
	if caps, found := capsCache[drv]; found {
		return caps, nil
	}
	version, status := drv.Version()
	if status != Success {
		return Capabilities{}, statusToError(status, "failed obtaining the driver's toolkit version")
	}
	caps := CapabilitiesForVersion(version)
	capsCache[drv] = caps
	return caps, nil
}
