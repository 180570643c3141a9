// Package cu provides host-side proxy objects for raw CUDA driver handles:
// events, kernels (compiled device functions) and modules of compiled device
// code.
//
// The package does not enumerate devices, allocate memory or create contexts
// or streams -- those belong to the surrounding application. What it owns is
// the lifecycle and context discipline around the handles it wraps: every
// operation that talks to the driver first makes the handle's own context
// current for the calling thread, and restores whatever was current before it
// returned, on every exit path.
//
// All native calls go through the narrow Driver interface; see the cudriver
// package for the cgo implementation.
package cu

import "fmt"

// Device is the raw CUDA ID of a physical accelerator. Immutable once
// captured by a proxy.
type Device int32

// Raw driver handles. They are opaque and only meaningful in relation to the
// context (and, for functions, the device) that produced them.
type (
	// ContextHandle references an execution context on a device. At most one
	// context is "current" per host thread at any time.
	ContextHandle uintptr

	// EventHandle references a point-in-stream marker used for
	// synchronization and (optionally) timing.
	EventHandle uintptr

	// StreamHandle references a stream (a.k.a. queue) of device work.
	StreamHandle uintptr

	// FunctionHandle references a compiled device function within a module.
	FunctionHandle uintptr

	// ModuleHandle references a loaded module of compiled device code.
	ModuleHandle uintptr
)

// DefaultStreamHandle is the well-known handle of the default stream of any
// context.
const DefaultStreamHandle StreamHandle = 0

// Version of a toolkit component (driver, runtime or NVRTC library).
type Version struct {
	Major, Minor int
}

// String implements fmt.Stringer.
func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// AtLeast returns whether v is the same or a later version than other.
func (v Version) AtLeast(other Version) bool {
	return v.Major > other.Major || (v.Major == other.Major && v.Minor >= other.Minor)
}

// ComputeCapability identifies the virtual or binary architecture generation
// of a device or of compiled code, e.g. 7.5 for Turing.
type ComputeCapability struct {
	Major, Minor int
}

// String implements fmt.Stringer.
func (cc ComputeCapability) String() string { return fmt.Sprintf("%d.%d", cc.Major, cc.Minor) }

// ccFromCombined decodes the single-number encoding used by kernel attributes
// (e.g. 75 -> compute capability 7.5).
func ccFromCombined(combined int32) ComputeCapability {
	return ComputeCapability{Major: int(combined) / 10, Minor: int(combined) % 10}
}

// Capabilities is the closed set of version-gated operations available with
// the toolkit version behind a Driver. It is computed once per Driver (see
// DriverCapabilities) instead of sprinkling version checks through call
// sites.
type Capabilities struct {
	// OccupancySearch: the block-size search behind
	// Kernel.MinGridParamsForMaxOccupancy.
	OccupancySearch bool

	// CUBINExtraction: NVRTC can hand back a binary (CUBIN) image.
	CUBINExtraction bool

	// NVVMExtraction: NVRTC can hand back the NVVM intermediate
	// representation.
	NVVMExtraction bool

	// ModuleFromCUBIN: modules can be materialized from a compiled program's
	// binary image rather than its PTX.
	ModuleFromCUBIN bool
}

// CapabilitiesForVersion derives the capability set from a toolkit version.
func CapabilitiesForVersion(v Version) Capabilities {
	return Capabilities{
		OccupancySearch: v.AtLeast(Version{10, 1}),
		CUBINExtraction: v.AtLeast(Version{11, 1}),
		NVVMExtraction:  v.AtLeast(Version{11, 4}),
		ModuleFromCUBIN: v.AtLeast(Version{11, 3}),
	}
}
