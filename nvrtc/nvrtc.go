// Package nvrtc provides a host-side proxy for runtime-compiled (RTC) device
// programs: source registration, name mangling lookup, compilation and
// extraction of the compiled artifacts (PTX assembly text, CUBIN binary
// image, NVVM intermediate representation) plus the compilation log.
//
// All native calls go through the narrow API interface; see the cudriver
// package for the cgo implementation.
package nvrtc

import (
	"fmt"

	"github.com/gomlx/gocuda/cu"
)

// ProgramHandle references a not-yet- or already-compiled program held by the
// runtime compiler.
type ProgramHandle uintptr

// API is the narrow boundary to the native runtime-compilation library.
// Every method corresponds to one native call and returns the raw Status;
// translation into identity-qualified errors happens in the Program proxy.
type API interface {
	// Version returns the version of the runtime-compilation library.
	Version() (cu.Version, Status)

	// CreateProgram registers a new program from source text plus parallel
	// lists of header names and header sources.
	CreateProgram(name, source string, headerNames, headerSources []string) (ProgramHandle, Status)

	// AddNameExpression declares, before compilation, a name expression whose
	// lowered (mangled) form should be retrievable after compilation.
	AddNameExpression(p ProgramHandle, nameExpression string) Status

	// Compile compiles the program with the given option list.
	Compile(p ProgramHandle, options []string) Status

	LogSize(p ProgramHandle) (uint64, Status)
	Log(p ProgramHandle) ([]byte, Status)

	PTXSize(p ProgramHandle) (uint64, Status)
	PTX(p ProgramHandle) ([]byte, Status)

	CUBINSize(p ProgramHandle) (uint64, Status)
	CUBIN(p ProgramHandle) ([]byte, Status)

	NVVMSize(p ProgramHandle) (uint64, Status)
	NVVM(p ProgramHandle) ([]byte, Status)

	// LoweredName returns the mangled form of a name expression registered
	// with AddNameExpression, after a successful compilation.
	LoweredName(p ProgramHandle, nameExpression string) (string, Status)

	DestroyProgram(p ProgramHandle) Status
}

func identifyProgram(handle ProgramHandle, name string) string {
	id := fmt.Sprintf("program at %#x", uintptr(handle))
	if name != "" {
		id += " named " + name
	}
	return id
}
