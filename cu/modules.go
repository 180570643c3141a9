package cu

import (
	"runtime"

	"k8s.io/klog/v2"
)

// LinkOptions configures just-in-time linking/loading of a module image. The
// zero value uses driver defaults.
type LinkOptions struct {
	// MaxRegisterCount caps the registers per thread; 0 means no cap.
	MaxRegisterCount int

	// GenerateDebugInfo embeds debug information (costs performance).
	GenerateDebugInfo bool

	// GenerateLineInfo embeds source line information.
	GenerateLineInfo bool

	// Verbose makes the JIT linker log verbosely.
	Verbose bool
}

func (o LinkOptions) marshal() []JITOption {
	var options []JITOption
	if o.MaxRegisterCount != 0 {
		options = append(options, JITOption{ID: JITMaxRegisters, Value: uint64(o.MaxRegisterCount)})
	}
	if o.GenerateDebugInfo {
		options = append(options, JITOption{ID: JITGenerateDebugInfo, Value: 1})
	}
	if o.GenerateLineInfo {
		options = append(options, JITOption{ID: JITGenerateLineInfo, Value: 1})
	}
	if o.Verbose {
		options = append(options, JITOption{ID: JITLogVerbose, Value: 1})
	}
	return options
}

// Module wraps a loaded, linked collection of compiled device code, from
// which Kernel proxies are obtained.
type Module struct {
	drv    Driver
	device Device
	ctx    ContextHandle
	handle ModuleHandle
	owning bool
}

// CreateModuleFromImage loads a compiled or semi-compiled image (CUBIN, PTX
// text or fatbin) into the given context and returns an owning proxy for the
// resulting module.
//
// To materialize a module from a runtime-compiled program, see
// nvrtc.CreateModule, which picks the image kind the toolkit can load.
func CreateModuleFromImage(ctx *Context, image []byte, options LinkOptions) (*Module, error) {
	var handle ModuleHandle
	err := inContext(ctx.drv, ctx.handle, func() error {
		var status Status
		handle, status = ctx.drv.ModuleLoadData(image, options.marshal())
		return statusToError(status, "failed loading a module image into "+ctx.String())
	})
	if err != nil {
		return nil, err
	}
	m := &Module{drv: ctx.drv, device: ctx.device, ctx: ctx.handle, handle: handle, owning: true}
	runtime.SetFinalizer(m, func(m *Module) {
		if err := m.Unload(); err != nil {
			klog.Errorf("Module.Unload failed: %+v", err)
		}
	})
	return m, nil
}

// WrapModule wraps a pre-existing module handle. With takeOwnership false the
// proxy never unloads the module.
func WrapModule(ctx *Context, handle ModuleHandle, takeOwnership bool) *Module {
	return &Module{drv: ctx.drv, device: ctx.device, ctx: ctx.handle, handle: handle, owning: takeOwnership}
}

// Device returns the raw CUDA ID of the device the module is loaded on.
func (m *Module) Device() Device { return m.device }

// ContextHandle returns the handle of the context the module is loaded in.
func (m *Module) ContextHandle() ContextHandle { return m.ctx }

// Handle returns the raw module handle.
func (m *Module) Handle() ModuleHandle { return m.handle }

// GetKernel obtains a (non-owning) proxy for a device function in the module,
// by (mangled) name.
func (m *Module) GetKernel(name string) (Kernel, error) {
	var fn FunctionHandle
	err := inContext(m.drv, m.ctx, func() error {
		var status Status
		fn, status = m.drv.ModuleGetFunction(m.handle, name)
		return statusToError(status, "failed obtaining function "+name+" from "+m.identify())
	})
	if err != nil {
		return Kernel{}, err
	}
	return Kernel{drv: m.drv, device: m.device, ctx: m.ctx, handle: fn}, nil
}

// Unload unloads the module iff this proxy owns it, invalidating all kernels
// obtained from it. Unlike event teardown, a failure here is propagated:
// failing to unload compiled code indicates a real bug. Unload is idempotent.
func (m *Module) Unload() error {
	if m == nil || m.handle == 0 || !m.owning {
		return nil
	}
	err := inContext(m.drv, m.ctx, func() error {
		status := m.drv.ModuleUnload(m.handle)
		return statusToError(status, "failed unloading "+m.identify())
	})
	if err != nil {
		return err
	}
	m.handle = 0
	m.owning = false
	runtime.SetFinalizer(m, nil)
	return nil
}

// String implements fmt.Stringer.
func (m *Module) String() string { return m.identify() }

func (m *Module) identify() string {
	return identifyModule(m.handle, m.ctx, m.device)
}
