package cu

// Human-readable identifiers for raw handles, used uniformly in error
// messages: "<kind> at <address>[ in <context>[ on device <id>]]".

import "fmt"

func ptrAsHex[H ~uintptr](handle H) string {
	return fmt.Sprintf("%#x", uintptr(handle))
}

func identifyDevice(device Device) string {
	return fmt.Sprintf("device %d", device)
}

func identifyContext(ctx ContextHandle) string {
	return "context at " + ptrAsHex(ctx)
}

func identifyContextOnDevice(ctx ContextHandle, device Device) string {
	return identifyContext(ctx) + " on " + identifyDevice(device)
}

func identifyEvent(event EventHandle, ctx ContextHandle, device Device) string {
	return "event at " + ptrAsHex(event) + " in " + identifyContextOnDevice(ctx, device)
}

func identifyStream(stream StreamHandle, ctx ContextHandle, device Device) string {
	if stream == DefaultStreamHandle {
		return "default stream in " + identifyContextOnDevice(ctx, device)
	}
	return "stream at " + ptrAsHex(stream) + " in " + identifyContextOnDevice(ctx, device)
}

func identifyKernel(fn FunctionHandle, ctx ContextHandle, device Device) string {
	return "kernel at " + ptrAsHex(fn) + " in " + identifyContextOnDevice(ctx, device)
}

func identifyModule(module ModuleHandle, ctx ContextHandle, device Device) string {
	return "module at " + ptrAsHex(module) + " in " + identifyContextOnDevice(ctx, device)
}
