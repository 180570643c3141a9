package cu

// Stream is a non-owning reference to a stream (queue) of device work. This
// package only consumes streams -- as recording targets for events and as
// synchronization points -- so only that narrow surface is exposed; stream
// creation and destruction belong to the surrounding application.
type Stream struct {
	drv    Driver
	device Device
	ctx    ContextHandle
	handle StreamHandle
}

// Handle returns the raw stream handle.
func (s *Stream) Handle() StreamHandle { return s.handle }

// Device returns the raw CUDA ID of the stream's device.
func (s *Stream) Device() Device { return s.device }

// ContextHandle returns the handle of the context the stream lives in.
func (s *Stream) ContextHandle() ContextHandle { return s.ctx }

// Synchronize blocks the calling thread until all work queued on the stream
// so far has completed.
func (s *Stream) Synchronize() error {
	return inContext(s.drv, s.ctx, func() error {
		status := s.drv.StreamSynchronize(s.handle)
		return statusToError(status, "failed synchronizing "+s.identify())
	})
}

// String implements fmt.Stringer.
func (s *Stream) String() string { return s.identify() }

func (s *Stream) identify() string {
	return identifyStream(s.handle, s.ctx, s.device)
}
