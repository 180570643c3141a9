package cu

import (
	"runtime"

	"k8s.io/klog/v2"
)

// Context is a non-owning reference to an execution context on a device. The
// proxies in this package remember the context their handle was created in,
// but never create or destroy contexts themselves.
type Context struct {
	drv    Driver
	device Device
	handle ContextHandle
}

// WrapContext wraps a pre-existing context handle. The context's lifetime is
// managed by whoever created it.
func WrapContext(drv Driver, device Device, handle ContextHandle) *Context {
	return &Context{drv: drv, device: device, handle: handle}
}

// CurrentContext returns a reference to the calling OS thread's current
// context. It fails if no context is current.
func CurrentContext(drv Driver) (*Context, error) {
	handle, status := drv.CtxGetCurrent()
	if err := statusToError(status, "failed obtaining the current context's handle"); err != nil {
		return nil, err
	}
	device, status := drv.CtxGetDevice()
	if err := statusToError(status, "failed obtaining the current context's device"); err != nil {
		return nil, err
	}
	return WrapContext(drv, device, handle), nil
}

// Driver returns the Driver this context reference operates through.
func (c *Context) Driver() Driver { return c.drv }

// Device returns the raw CUDA ID of the context's device.
func (c *Context) Device() Device { return c.device }

// Handle returns the raw context handle.
func (c *Context) Handle() ContextHandle { return c.handle }

// ComputeCapability returns the compute capability of the context's device.
func (c *Context) ComputeCapability() (ComputeCapability, error) {
	cc, status := c.drv.DeviceComputeCapability(c.device)
	return cc, statusToError(status, "failed obtaining the compute capability of "+identifyDevice(c.device))
}

// DefaultStream returns the context's default stream.
func (c *Context) DefaultStream() *Stream {
	return c.WrapStream(DefaultStreamHandle)
}

// WrapStream wraps a pre-existing stream handle belonging to this context.
// The stream is not owned: creating and destroying streams is the surrounding
// application's business.
func (c *Context) WrapStream(handle StreamHandle) *Stream {
	return &Stream{drv: c.drv, device: c.device, ctx: c.handle, handle: handle}
}

// String implements fmt.Stringer.
func (c *Context) String() string {
	return identifyContextOnDevice(c.handle, c.device)
}

// pushContextScope makes ctx current for the calling thread and returns the
// closure restoring the previous context. The closure must run on every exit
// path (defer it immediately); it logs instead of failing, since by then the
// original operation's outcome is already decided.
//
// The current-context slot is per OS thread, so the thread is locked to the
// goroutine for the duration of the scope. Scopes nest in LIFO order.
func pushContextScope(drv Driver, ctx ContextHandle) (restore func(), err error) {
	runtime.LockOSThread()
	if status := drv.CtxPushCurrent(ctx); status != Success {
		runtime.UnlockOSThread()
		return nil, statusToError(status, "failed pushing "+identifyContext(ctx)+" onto the context stack")
	}
	return func() {
		if _, status := drv.CtxPopCurrent(); status != Success {
			klog.Errorf("Failed restoring the previous context after a scope over %s: %v",
				identifyContext(ctx), status)
		}
		runtime.UnlockOSThread()
	}, nil
}

// inContext runs fn with ctx current, restoring the previously-current
// context afterwards whether fn succeeds or not.
func inContext(drv Driver, ctx ContextHandle, fn func() error) error {
	restore, err := pushContextScope(drv, ctx)
	if err != nil {
		return err
	}
	defer restore()
	return fn()
}
