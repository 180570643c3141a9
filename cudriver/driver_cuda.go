//go:build cuda

package cudriver

/*
#cgo LDFLAGS: -lcuda -lnvrtc

#include <stdlib.h>
#include <cuda.h>
#include <nvrtc.h>

extern size_t gocudaBlockToDynSMem(int blockSize);
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/gomlx/gocuda/cu"
	"github.com/gomlx/gocuda/nvrtc"
)

// Lib is the handle to the initialized native libraries.
type Lib struct {
	driver driver
	rtc    rtc
}

// New initializes the CUDA driver and returns the library handle from which
// the cu.Driver and nvrtc.API implementations are obtained.
func New() (*Lib, error) {
	if status := cu.Status(C.cuInit(0)); status != cu.Success {
		return nil, status
	}
	return &Lib{}, nil
}

// Driver returns the cu.Driver implementation.
func (l *Lib) Driver() cu.Driver { return l.driver }

// NVRTC returns the nvrtc.API implementation.
func (l *Lib) NVRTC() nvrtc.API { return l.rtc }

// driver implements cu.Driver with direct CUDA driver API calls.
type driver struct{}

func (driver) Version() (cu.Version, cu.Status) {
	var combined C.int
	status := cu.Status(C.cuDriverGetVersion(&combined))
	// Encoded as 1000*major + 10*minor.
	return cu.Version{Major: int(combined) / 1000, Minor: (int(combined) % 1000) / 10}, status
}

func (driver) DeviceComputeCapability(device cu.Device) (cu.ComputeCapability, cu.Status) {
	var major, minor C.int
	status := cu.Status(C.cuDeviceGetAttribute(&major,
		C.CU_DEVICE_ATTRIBUTE_COMPUTE_CAPABILITY_MAJOR, C.CUdevice(device)))
	if status != cu.Success {
		return cu.ComputeCapability{}, status
	}
	status = cu.Status(C.cuDeviceGetAttribute(&minor,
		C.CU_DEVICE_ATTRIBUTE_COMPUTE_CAPABILITY_MINOR, C.CUdevice(device)))
	return cu.ComputeCapability{Major: int(major), Minor: int(minor)}, status
}

func (driver) CtxPushCurrent(ctx cu.ContextHandle) cu.Status {
	return cu.Status(C.cuCtxPushCurrent(cContext(ctx)))
}

func (driver) CtxPopCurrent() (cu.ContextHandle, cu.Status) {
	var ctx C.CUcontext
	status := cu.Status(C.cuCtxPopCurrent(&ctx))
	return cu.ContextHandle(uintptr(unsafe.Pointer(ctx))), status
}

func (driver) CtxGetCurrent() (cu.ContextHandle, cu.Status) {
	var ctx C.CUcontext
	status := cu.Status(C.cuCtxGetCurrent(&ctx))
	return cu.ContextHandle(uintptr(unsafe.Pointer(ctx))), status
}

func (driver) CtxGetDevice() (cu.Device, cu.Status) {
	var device C.CUdevice
	status := cu.Status(C.cuCtxGetDevice(&device))
	return cu.Device(device), status
}

func (driver) EventCreate(flags cu.EventFlags) (cu.EventHandle, cu.Status) {
	var event C.CUevent
	status := cu.Status(C.cuEventCreate(&event, C.uint(flags)))
	return cu.EventHandle(uintptr(unsafe.Pointer(event))), status
}

func (driver) EventRecord(event cu.EventHandle, stream cu.StreamHandle) cu.Status {
	return cu.Status(C.cuEventRecord(cEvent(event), cStream(stream)))
}

func (driver) EventQuery(event cu.EventHandle) cu.Status {
	return cu.Status(C.cuEventQuery(cEvent(event)))
}

func (driver) EventSynchronize(event cu.EventHandle) cu.Status {
	return cu.Status(C.cuEventSynchronize(cEvent(event)))
}

func (driver) EventDestroy(event cu.EventHandle) cu.Status {
	return cu.Status(C.cuEventDestroy(cEvent(event)))
}

func (driver) EventElapsedTime(start, end cu.EventHandle) (float32, cu.Status) {
	var milliseconds C.float
	status := cu.Status(C.cuEventElapsedTime(&milliseconds, cEvent(start), cEvent(end)))
	return float32(milliseconds), status
}

func (driver) StreamSynchronize(stream cu.StreamHandle) cu.Status {
	return cu.Status(C.cuStreamSynchronize(cStream(stream)))
}

func (driver) FuncGetAttribute(fn cu.FunctionHandle, attribute cu.FuncAttribute) (int32, cu.Status) {
	var value C.int
	status := cu.Status(C.cuFuncGetAttribute(&value, C.CUfunction_attribute(attribute), cFunction(fn)))
	return int32(value), status
}

func (driver) FuncSetAttribute(fn cu.FunctionHandle, attribute cu.FuncAttribute, value int32) cu.Status {
	return cu.Status(C.cuFuncSetAttribute(cFunction(fn), C.CUfunction_attribute(attribute), C.int(value)))
}

func (driver) FuncSetCacheConfig(fn cu.FunctionHandle, preference cu.CachePreference) cu.Status {
	return cu.Status(C.cuFuncSetCacheConfig(cFunction(fn), C.CUfunc_cache(preference)))
}

func (driver) FuncSetSharedMemConfig(fn cu.FunctionHandle, config cu.SharedMemBankSize) cu.Status {
	return cu.Status(C.cuFuncSetSharedMemConfig(cFunction(fn), C.CUsharedconfig(config)))
}

// The native block-size search takes a plain C function pointer with no
// per-call state, so a Go callback is carried through a package-level slot,
// serialized by b2dMu.
var (
	b2dMu   sync.Mutex
	b2dFunc cu.BlockToDynSMemFunc
)

//export gocudaBlockToDynSMem
func gocudaBlockToDynSMem(blockSize C.int) C.size_t {
	return C.size_t(b2dFunc(int(blockSize)))
}

func (driver) OccupancyMaxPotentialBlockSize(fn cu.FunctionHandle, blockSizeToDynSMem cu.BlockToDynSMemFunc,
	fixedDynSMem uint64, blockSizeLimit int, disableCachingOverride bool) (int, int, cu.Status) {
	var flags C.uint
	if disableCachingOverride {
		flags = C.CU_OCCUPANCY_DISABLE_CACHING_OVERRIDE
	}
	var minGridSize, blockSize C.int
	var status cu.Status
	if blockSizeToDynSMem != nil {
		b2dMu.Lock()
		b2dFunc = blockSizeToDynSMem
		status = cu.Status(C.cuOccupancyMaxPotentialBlockSizeWithFlags(
			&minGridSize, &blockSize, cFunction(fn),
			C.CUoccupancyB2DSize(C.gocudaBlockToDynSMem), 0, C.int(blockSizeLimit), flags))
		b2dFunc = nil
		b2dMu.Unlock()
	} else {
		status = cu.Status(C.cuOccupancyMaxPotentialBlockSizeWithFlags(
			&minGridSize, &blockSize, cFunction(fn),
			nil, C.size_t(fixedDynSMem), C.int(blockSizeLimit), flags))
	}
	return int(minGridSize), int(blockSize), status
}

func (driver) OccupancyMaxActiveBlocksPerMultiprocessor(fn cu.FunctionHandle, blockSize int,
	dynSMemPerBlock uint64, disableCachingOverride bool) (int, cu.Status) {
	var flags C.uint
	if disableCachingOverride {
		flags = C.CU_OCCUPANCY_DISABLE_CACHING_OVERRIDE
	}
	var numBlocks C.int
	status := cu.Status(C.cuOccupancyMaxActiveBlocksPerMultiprocessorWithFlags(
		&numBlocks, cFunction(fn), C.int(blockSize), C.size_t(dynSMemPerBlock), flags))
	return int(numBlocks), status
}

func (driver) OccupancyAvailableDynamicSMemPerBlock(fn cu.FunctionHandle,
	blocksOnMultiprocessor, blockSize int) (uint64, cu.Status) {
	var dynSMem C.size_t
	status := cu.Status(C.cuOccupancyAvailableDynamicSMemPerBlock(
		&dynSMem, cFunction(fn), C.int(blocksOnMultiprocessor), C.int(blockSize)))
	return uint64(dynSMem), status
}

func (driver) ModuleLoadData(image []byte, options []cu.JITOption) (cu.ModuleHandle, cu.Status) {
	// PTX images are text and must be NUL-terminated.
	buf := make([]byte, len(image)+1)
	copy(buf, image)
	cImage := C.CBytes(buf)
	defer C.free(cImage)

	var optIDs []C.CUjit_option
	var optValues []unsafe.Pointer
	for _, option := range options {
		optIDs = append(optIDs, C.CUjit_option(option.ID))
		// Scalar option values are passed by-value through the pointer slot.
		optValues = append(optValues, unsafe.Pointer(uintptr(option.Value)))
	}
	var idsPtr *C.CUjit_option
	var valuesPtr *unsafe.Pointer
	if len(options) > 0 {
		idsPtr = &optIDs[0]
		valuesPtr = &optValues[0]
	}

	var module C.CUmodule
	status := cu.Status(C.cuModuleLoadDataEx(&module, cImage, C.uint(len(options)), idsPtr, valuesPtr))
	return cu.ModuleHandle(uintptr(unsafe.Pointer(module))), status
}

func (driver) ModuleGetFunction(module cu.ModuleHandle, name string) (cu.FunctionHandle, cu.Status) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var fn C.CUfunction
	status := cu.Status(C.cuModuleGetFunction(&fn, cModule(module), cName))
	return cu.FunctionHandle(uintptr(unsafe.Pointer(fn))), status
}

func (driver) ModuleUnload(module cu.ModuleHandle) cu.Status {
	return cu.Status(C.cuModuleUnload(cModule(module)))
}

func cContext(h cu.ContextHandle) C.CUcontext { return C.CUcontext(unsafe.Pointer(uintptr(h))) }

func cEvent(h cu.EventHandle) C.CUevent { return C.CUevent(unsafe.Pointer(uintptr(h))) }

func cStream(h cu.StreamHandle) C.CUstream { return C.CUstream(unsafe.Pointer(uintptr(h))) }

func cFunction(h cu.FunctionHandle) C.CUfunction { return C.CUfunction(unsafe.Pointer(uintptr(h))) }

func cModule(h cu.ModuleHandle) C.CUmodule { return C.CUmodule(unsafe.Pointer(uintptr(h))) }
