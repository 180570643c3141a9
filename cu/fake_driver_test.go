package cu

// An in-memory Driver implementation used by all tests in this package. It
// models just enough device behavior for the proxies to be exercised without
// hardware: a per-process context stack, streams with a pending-work counter,
// events as a recorded/occurred state machine with logical timestamps, and a
// deterministic occupancy model.
//
// The tests are single-goroutine, so no locking.

import (
	"bytes"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	fakeMaxThreadsPerBlock       = 1024
	fakeMaxThreadsPerSM          = 2048
	fakeMultiprocessors          = 8
	fakeSharedMemPerBlock uint64 = 48 * 1024
)

type fakeEvent struct {
	flags      EventFlags
	recorded   bool
	occurred   bool
	recordedOn StreamHandle
	timestamp  float32 // logical milliseconds, valid once occurred
	destroyed  bool
}

type fakeModule struct {
	kernels  map[string]FunctionHandle
	unloaded bool
}

type fakeDriver struct {
	version   Version
	ccOf      map[Device]ComputeCapability
	ctxDevice map[ContextHandle]Device
	ctxStack  []ContextHandle

	clock   float32
	pending map[StreamHandle]int
	events  map[EventHandle]*fakeEvent

	attrs      map[FunctionHandle]map[FuncAttribute]int32
	cachePrefs map[FunctionHandle]CachePreference
	bankSizes  map[FunctionHandle]SharedMemBankSize

	// images maps recognizable module images to the kernel names they define.
	images  map[string][]string
	modules map[ModuleHandle]*fakeModule

	lastJITOptions []JITOption

	nextEvent    EventHandle
	nextModule   ModuleHandle
	nextFunction FunctionHandle
}

func newFakeDriver(version Version) *fakeDriver {
	return &fakeDriver{
		version:      version,
		ccOf:         map[Device]ComputeCapability{0: {7, 5}},
		ctxDevice:    map[ContextHandle]Device{},
		pending:      map[StreamHandle]int{},
		events:       map[EventHandle]*fakeEvent{},
		attrs:        map[FunctionHandle]map[FuncAttribute]int32{},
		cachePrefs:   map[FunctionHandle]CachePreference{},
		bankSizes:    map[FunctionHandle]SharedMemBankSize{},
		images:       map[string][]string{},
		modules:      map[ModuleHandle]*fakeModule{},
		nextEvent:    0x1000,
		nextModule:   0x2000,
		nextFunction: 0x3000,
	}
}

// newFakeContext registers a context handle on device 0 and returns a proxy
// reference to it.
func newFakeContext(fd *fakeDriver, handle ContextHandle) *Context {
	fd.ctxDevice[handle] = 0
	return WrapContext(fd, 0, handle)
}

// queueWork marks the stream as having pending work items; events recorded on
// it will stay pending until the stream is synchronized.
func (fd *fakeDriver) queueWork(stream StreamHandle, items int) {
	fd.pending[stream] += items
}

// CheckLeaks reports every resource the proxies failed to release and every
// unbalanced context push.
func (fd *fakeDriver) CheckLeaks() error {
	var err error
	for handle, event := range fd.events {
		if !event.destroyed {
			err = multierr.Append(err, errors.Errorf("event %#x was never destroyed", uintptr(handle)))
		}
	}
	for handle, module := range fd.modules {
		if !module.unloaded {
			err = multierr.Append(err, errors.Errorf("module %#x was never unloaded", uintptr(handle)))
		}
	}
	if depth := len(fd.ctxStack); depth != 0 {
		err = multierr.Append(err, errors.Errorf("%d context pushes were never popped", depth))
	}
	return err
}

func (fd *fakeDriver) Version() (Version, Status) {
	return fd.version, Success
}

func (fd *fakeDriver) DeviceComputeCapability(device Device) (ComputeCapability, Status) {
	cc, found := fd.ccOf[device]
	if !found {
		return ComputeCapability{}, ErrorInvalidValue
	}
	return cc, Success
}

func (fd *fakeDriver) CtxPushCurrent(ctx ContextHandle) Status {
	if _, found := fd.ctxDevice[ctx]; !found {
		return ErrorInvalidContext
	}
	fd.ctxStack = append(fd.ctxStack, ctx)
	return Success
}

func (fd *fakeDriver) CtxPopCurrent() (ContextHandle, Status) {
	if len(fd.ctxStack) == 0 {
		return 0, ErrorInvalidContext
	}
	popped := fd.ctxStack[len(fd.ctxStack)-1]
	fd.ctxStack = fd.ctxStack[:len(fd.ctxStack)-1]
	return popped, Success
}

func (fd *fakeDriver) CtxGetCurrent() (ContextHandle, Status) {
	if len(fd.ctxStack) == 0 {
		return 0, Success
	}
	return fd.ctxStack[len(fd.ctxStack)-1], Success
}

func (fd *fakeDriver) CtxGetDevice() (Device, Status) {
	if len(fd.ctxStack) == 0 {
		return 0, ErrorInvalidContext
	}
	return fd.ctxDevice[fd.ctxStack[len(fd.ctxStack)-1]], Success
}

// requireCurrent models the driver rejecting calls made without a current
// context.
func (fd *fakeDriver) requireCurrent() Status {
	if len(fd.ctxStack) == 0 {
		return ErrorInvalidContext
	}
	return Success
}

func (fd *fakeDriver) EventCreate(flags EventFlags) (EventHandle, Status) {
	if status := fd.requireCurrent(); status != Success {
		return 0, status
	}
	handle := fd.nextEvent
	fd.nextEvent++
	fd.events[handle] = &fakeEvent{flags: flags}
	return handle, Success
}

func (fd *fakeDriver) lookupEvent(event EventHandle) (*fakeEvent, Status) {
	fe, found := fd.events[event]
	if !found || fe.destroyed {
		return nil, ErrorInvalidHandle
	}
	return fe, Success
}

func (fd *fakeDriver) EventRecord(event EventHandle, stream StreamHandle) Status {
	if status := fd.requireCurrent(); status != Success {
		return status
	}
	fe, status := fd.lookupEvent(event)
	if status != Success {
		return status
	}
	fe.recorded = true
	fe.recordedOn = stream
	if fd.pending[stream] == 0 {
		fd.fire(fe)
	} else {
		fe.occurred = false
	}
	return Success
}

func (fd *fakeDriver) fire(fe *fakeEvent) {
	fd.clock++
	fe.occurred = true
	fe.timestamp = fd.clock
}

func (fd *fakeDriver) EventQuery(event EventHandle) Status {
	if status := fd.requireCurrent(); status != Success {
		return status
	}
	fe, status := fd.lookupEvent(event)
	if status != Success {
		return status
	}
	// An event never recorded is treated as having (vacuously) occurred.
	if fe.recorded && !fe.occurred {
		return ErrorNotReady
	}
	return Success
}

func (fd *fakeDriver) EventSynchronize(event EventHandle) Status {
	if status := fd.requireCurrent(); status != Success {
		return status
	}
	fe, status := fd.lookupEvent(event)
	if status != Success {
		return status
	}
	if fe.recorded && !fe.occurred {
		fd.drainStream(fe.recordedOn)
	}
	return Success
}

func (fd *fakeDriver) EventDestroy(event EventHandle) Status {
	fe, status := fd.lookupEvent(event)
	if status != Success {
		return status
	}
	fe.destroyed = true
	return Success
}

func (fd *fakeDriver) EventElapsedTime(start, end EventHandle) (float32, Status) {
	first, status := fd.lookupEvent(start)
	if status != Success {
		return 0, status
	}
	second, status := fd.lookupEvent(end)
	if status != Success {
		return 0, status
	}
	if first.flags&EventFlagDisableTiming != 0 || second.flags&EventFlagDisableTiming != 0 {
		return 0, ErrorInvalidHandle
	}
	if !first.occurred || !second.occurred {
		return 0, ErrorNotReady
	}
	return second.timestamp - first.timestamp, Success
}

func (fd *fakeDriver) drainStream(stream StreamHandle) {
	fd.pending[stream] = 0
	for _, fe := range fd.events {
		if fe.recorded && !fe.occurred && fe.recordedOn == stream {
			fd.fire(fe)
		}
	}
}

func (fd *fakeDriver) StreamSynchronize(stream StreamHandle) Status {
	if status := fd.requireCurrent(); status != Success {
		return status
	}
	fd.drainStream(stream)
	return Success
}

// installKernel registers a loose function handle with the given attributes,
// for tests that exercise kernels without going through a module.
func (fd *fakeDriver) installKernel(attrs map[FuncAttribute]int32) FunctionHandle {
	handle := fd.nextFunction
	fd.nextFunction++
	if attrs == nil {
		attrs = map[FuncAttribute]int32{}
	}
	if _, found := attrs[FuncAttributeMaxThreadsPerBlock]; !found {
		attrs[FuncAttributeMaxThreadsPerBlock] = fakeMaxThreadsPerBlock
	}
	fd.attrs[handle] = attrs
	return handle
}

func (fd *fakeDriver) FuncGetAttribute(fn FunctionHandle, attribute FuncAttribute) (int32, Status) {
	if status := fd.requireCurrent(); status != Success {
		return 0, status
	}
	attrs, found := fd.attrs[fn]
	if !found {
		return 0, ErrorInvalidHandle
	}
	return attrs[attribute], Success
}

func (fd *fakeDriver) FuncSetAttribute(fn FunctionHandle, attribute FuncAttribute, value int32) Status {
	if status := fd.requireCurrent(); status != Success {
		return status
	}
	attrs, found := fd.attrs[fn]
	if !found {
		return ErrorInvalidHandle
	}
	switch attribute {
	case FuncAttributeMaxDynamicSharedSizeBytes, FuncAttributePreferredSharedMemoryCarveout:
		attrs[attribute] = value
		return Success
	default:
		return ErrorInvalidValue
	}
}

func (fd *fakeDriver) FuncSetCacheConfig(fn FunctionHandle, preference CachePreference) Status {
	if status := fd.requireCurrent(); status != Success {
		return status
	}
	if _, found := fd.attrs[fn]; !found {
		return ErrorInvalidHandle
	}
	fd.cachePrefs[fn] = preference
	return Success
}

func (fd *fakeDriver) FuncSetSharedMemConfig(fn FunctionHandle, config SharedMemBankSize) Status {
	if status := fd.requireCurrent(); status != Success {
		return status
	}
	if _, found := fd.attrs[fn]; !found {
		return ErrorInvalidHandle
	}
	fd.bankSizes[fn] = config
	return Success
}

// The occupancy model: block sizes halve from the kernel's maximum until the
// dynamic shared-memory need fits a block's budget; the grid then covers all
// multiprocessors at full thread residency.
func (fd *fakeDriver) OccupancyMaxPotentialBlockSize(fn FunctionHandle, blockSizeToDynSMem BlockToDynSMemFunc,
	fixedDynSMem uint64, blockSizeLimit int, disableCachingOverride bool) (int, int, Status) {
	if status := fd.requireCurrent(); status != Success {
		return 0, 0, status
	}
	attrs, found := fd.attrs[fn]
	if !found {
		return 0, 0, ErrorInvalidHandle
	}
	blockSize := int(attrs[FuncAttributeMaxThreadsPerBlock])
	if blockSizeLimit > 0 && blockSizeLimit < blockSize {
		blockSize = blockSizeLimit
	}
	for blockSize > 32 {
		dynSMem := fixedDynSMem
		if blockSizeToDynSMem != nil {
			dynSMem = blockSizeToDynSMem(blockSize)
		}
		if dynSMem <= fakeSharedMemPerBlock {
			break
		}
		blockSize /= 2
	}
	minGridSize := fakeMultiprocessors * fakeMaxThreadsPerSM / blockSize
	return minGridSize, blockSize, Success
}

func (fd *fakeDriver) OccupancyMaxActiveBlocksPerMultiprocessor(fn FunctionHandle, blockSize int,
	dynSMemPerBlock uint64, disableCachingOverride bool) (int, Status) {
	if status := fd.requireCurrent(); status != Success {
		return 0, status
	}
	if _, found := fd.attrs[fn]; !found {
		return 0, ErrorInvalidHandle
	}
	if blockSize <= 0 {
		return 0, ErrorInvalidValue
	}
	blocks := fakeMaxThreadsPerSM / blockSize
	if dynSMemPerBlock > 0 {
		if bySMem := int(fakeSharedMemPerBlock / dynSMemPerBlock); bySMem < blocks {
			blocks = bySMem
		}
	}
	return blocks, Success
}

func (fd *fakeDriver) OccupancyAvailableDynamicSMemPerBlock(fn FunctionHandle,
	blocksOnMultiprocessor, blockSize int) (uint64, Status) {
	if status := fd.requireCurrent(); status != Success {
		return 0, status
	}
	if _, found := fd.attrs[fn]; !found {
		return 0, ErrorInvalidHandle
	}
	if blocksOnMultiprocessor <= 0 {
		return 0, ErrorInvalidValue
	}
	return fakeSharedMemPerBlock / uint64(blocksOnMultiprocessor), Success
}

// installImage declares a module image (by content) and the kernels loading
// it will expose.
func (fd *fakeDriver) installImage(image []byte, kernelNames ...string) {
	fd.images[string(image)] = kernelNames
}

func (fd *fakeDriver) ModuleLoadData(image []byte, options []JITOption) (ModuleHandle, Status) {
	if status := fd.requireCurrent(); status != Success {
		return 0, status
	}
	names, found := fd.images[string(bytes.TrimRight(image, "\x00"))]
	if !found {
		return 0, ErrorInvalidValue
	}
	fd.lastJITOptions = options
	module := &fakeModule{kernels: map[string]FunctionHandle{}}
	for _, name := range names {
		module.kernels[name] = fd.installKernel(nil)
	}
	handle := fd.nextModule
	fd.nextModule++
	fd.modules[handle] = module
	return handle, Success
}

func (fd *fakeDriver) ModuleGetFunction(module ModuleHandle, name string) (FunctionHandle, Status) {
	if status := fd.requireCurrent(); status != Success {
		return 0, status
	}
	fm, found := fd.modules[module]
	if !found || fm.unloaded {
		return 0, ErrorInvalidHandle
	}
	fn, found := fm.kernels[name]
	if !found {
		return 0, ErrorNotFound
	}
	return fn, Success
}

func (fd *fakeDriver) ModuleUnload(module ModuleHandle) Status {
	if status := fd.requireCurrent(); status != Success {
		return status
	}
	fm, found := fd.modules[module]
	if !found || fm.unloaded {
		return ErrorInvalidHandle
	}
	fm.unloaded = true
	return Success
}
