package cu

import (
	"runtime"
	"time"

	"k8s.io/klog/v2"
)

// EventFlags is the bitmask handed to the native event-creation call.
type EventFlags uint32

const (
	EventFlagDefault       EventFlags = 0x0
	EventFlagBlockingSync  EventFlags = 0x1
	EventFlagDisableTiming EventFlags = 0x2
	EventFlagInterprocess  EventFlags = 0x4
)

// EventOptions selects the behavior of a new event. The zero value matches
// the driver defaults: busy-wait synchronization, no timing, process-local.
type EventOptions struct {
	// BlockingSync makes a thread synchronizing on the event block rather
	// than busy-wait.
	BlockingSync bool

	// EnableTiming allows the event to be used with TimeElapsedBetween.
	EnableTiming bool

	// Interprocess allows the event to be shared with other processes.
	Interprocess bool
}

func (o EventOptions) flags() EventFlags {
	var flags EventFlags
	if o.BlockingSync {
		flags |= EventFlagBlockingSync
	}
	if !o.EnableTiming {
		flags |= EventFlagDisableTiming
	}
	if o.Interprocess {
		flags |= EventFlagInterprocess
	}
	return flags
}

// Event wraps a raw event handle together with the context it was created in.
//
// An Event may or may not own its handle. At most one owning Event exists per
// live handle: CreateEvent produces an owning one, Copy produces non-owning
// aliases, and Move transfers ownership. There is no reference counting --
// the single owner destroys the handle, aliases never do.
//
// Calling Record concurrently on the same event from several goroutines is
// undefined behavior.
type Event struct {
	drv    Driver
	device Device
	ctx    ContextHandle
	handle EventHandle
	owning bool
}

// CreateEvent asks the driver to allocate a new event in the given context --
// which is made current for the creation call -- and returns an owning proxy
// for it.
func CreateEvent(ctx *Context, options EventOptions) (*Event, error) {
	var handle EventHandle
	err := inContext(ctx.drv, ctx.handle, func() error {
		var status Status
		handle, status = ctx.drv.EventCreate(options.flags())
		return statusToError(status, "failed creating an event in "+ctx.String())
	})
	if err != nil {
		return nil, err
	}
	return newEvent(ctx.drv, ctx.device, ctx.handle, handle, true), nil
}

// WrapEvent adopts a pre-existing event handle supplied by a collaborator.
// With takeOwnership false (the usual case) the proxy never destroys the
// handle; with true it behaves like one returned by CreateEvent.
func WrapEvent(ctx *Context, handle EventHandle, takeOwnership bool) *Event {
	return newEvent(ctx.drv, ctx.device, ctx.handle, handle, takeOwnership)
}

func newEvent(drv Driver, device Device, ctx ContextHandle, handle EventHandle, owning bool) *Event {
	e := &Event{drv: drv, device: device, ctx: ctx, handle: handle, owning: owning}
	if owning {
		runtime.SetFinalizer(e, func(e *Event) { e.Destroy() })
	}
	return e
}

// Device returns the raw CUDA ID of the device the event is defined on.
func (e *Event) Device() Device { return e.device }

// ContextHandle returns the handle of the context the event was created in.
func (e *Event) ContextHandle() ContextHandle { return e.ctx }

// Handle returns the raw event handle.
func (e *Event) Handle() EventHandle { return e.handle }

// IsOwning reports whether this proxy destroys the underlying event when
// Destroy is called (or it is garbage collected).
func (e *Event) IsOwning() bool { return e.owning }

// Copy returns a non-owning alias of the event: both proxies refer to the
// same handle, but only the original (if owning) will ever destroy it.
func (e *Event) Copy() *Event {
	return newEvent(e.drv, e.device, e.ctx, e.handle, false)
}

// Move transfers ownership of the handle to a new proxy. The source keeps
// referring to the handle but no longer owns it.
func (e *Event) Move() *Event {
	moved := newEvent(e.drv, e.device, e.ctx, e.handle, e.owning)
	e.owning = false
	runtime.SetFinalizer(e, nil)
	return moved
}

// Record enqueues the event to fire once all work already queued on stream
// has completed. Repeated calls simply move the firing point forward; there
// is no guard against a prior recording still being pending.
func (e *Event) Record(stream *Stream) error {
	return inContext(e.drv, e.ctx, func() error {
		status := e.drv.EventRecord(e.handle, stream.handle)
		return statusToError(status, "failed recording "+e.identify()+" on "+stream.identify())
	})
}

// RecordDefault records the event on the default stream of its context.
func (e *Event) RecordDefault() error {
	return inContext(e.drv, e.ctx, func() error {
		status := e.drv.EventRecord(e.handle, DefaultStreamHandle)
		return statusToError(status, "failed recording "+e.identify()+" on the default stream")
	})
}

// Fire records the event on stream and blocks until it has occurred, by
// synchronizing the stream.
func (e *Event) Fire(stream *Stream) error {
	if err := e.Record(stream); err != nil {
		return err
	}
	return stream.Synchronize()
}

// HasOccurred reports whether the event has fired: true if it was never
// recorded, or if all work preceding its recording point has completed; false
// while such work is still pending.
func (e *Event) HasOccurred() (bool, error) {
	var occurred bool
	err := inContext(e.drv, e.ctx, func() error {
		switch status := e.drv.EventQuery(e.handle); status {
		case Success:
			occurred = true
			return nil
		case ErrorNotReady:
			occurred = false
			return nil
		default:
			return statusToError(status, "could not determine whether "+e.identify()+" has occurred")
		}
	})
	return occurred, err
}

// Query is an alias for HasOccurred, conforming to the native API's name for
// this functionality.
func (e *Event) Query() (bool, error) { return e.HasOccurred() }

// Synchronize blocks the calling thread until the event occurs. Calling it on
// an event that has already occurred (or was never recorded) returns
// immediately.
func (e *Event) Synchronize() error {
	return inContext(e.drv, e.ctx, func() error {
		status := e.drv.EventSynchronize(e.handle)
		return statusToError(status, "failed synchronizing on "+e.identify())
	})
}

// Destroy releases the underlying event iff this proxy owns it. A failure to
// destroy is swallowed (logged only): a destructor path must not fail, and
// the context may well be gone already by the time it runs. Destroy is
// idempotent, and is called automatically if an owning Event is garbage
// collected.
func (e *Event) Destroy() {
	if e == nil || e.handle == 0 {
		return
	}
	if e.owning {
		if status := e.drv.EventDestroy(e.handle); status != Success {
			klog.Warningf("Swallowing failure to destroy %s: %v", e.identify(), status)
		}
	}
	e.handle = 0
	e.owning = false
	runtime.SetFinalizer(e, nil)
}

// String implements fmt.Stringer.
func (e *Event) String() string { return e.identify() }

func (e *Event) identify() string {
	return identifyEvent(e.handle, e.ctx, e.device)
}

// TimeElapsedBetween measures the (somewhat inaccurate) wall time between the
// firing of two events. Both events must have been created with
// EventOptions.EnableTiming and must have occurred, otherwise the call fails.
//
// The native API reports the difference in milliseconds as a float; it is
// converted to a time.Duration here.
func TimeElapsedBetween(start, end *Event) (time.Duration, error) {
	milliseconds, status := start.drv.EventElapsedTime(start.handle, end.handle)
	if status != Success {
		return 0, statusToError(status,
			"failed determining the time elapsed between "+start.identify()+" and "+end.identify())
	}
	return time.Duration(float64(milliseconds) * float64(time.Millisecond)), nil
}
