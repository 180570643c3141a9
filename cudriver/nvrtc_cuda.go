//go:build cuda

package cudriver

/*
#include <stdlib.h>
#include <nvrtc.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gomlx/gocuda/cu"
	"github.com/gomlx/gocuda/nvrtc"
)

// rtc implements nvrtc.API with direct NVRTC calls.
type rtc struct{}

func (rtc) Version() (cu.Version, nvrtc.Status) {
	var major, minor C.int
	status := nvrtc.Status(C.nvrtcVersion(&major, &minor))
	return cu.Version{Major: int(major), Minor: int(minor)}, status
}

func (rtc) CreateProgram(name, source string, headerNames, headerSources []string) (nvrtc.ProgramHandle, nvrtc.Status) {
	cSource := C.CString(source)
	defer C.free(unsafe.Pointer(cSource))
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var namesPtr, sourcesPtr **C.char
	if len(headerNames) > 0 {
		cNames := make([]*C.char, len(headerNames))
		cSources := make([]*C.char, len(headerSources))
		for ii := range headerNames {
			cNames[ii] = C.CString(headerNames[ii])
			cSources[ii] = C.CString(headerSources[ii])
			defer C.free(unsafe.Pointer(cNames[ii]))
			defer C.free(unsafe.Pointer(cSources[ii]))
		}
		namesPtr = &cNames[0]
		sourcesPtr = &cSources[0]
	}

	var program C.nvrtcProgram
	status := nvrtc.Status(C.nvrtcCreateProgram(&program, cSource, cName,
		C.int(len(headerNames)), sourcesPtr, namesPtr))
	return nvrtc.ProgramHandle(uintptr(unsafe.Pointer(program))), status
}

func (rtc) AddNameExpression(p nvrtc.ProgramHandle, nameExpression string) nvrtc.Status {
	cExpr := C.CString(nameExpression)
	defer C.free(unsafe.Pointer(cExpr))
	return nvrtc.Status(C.nvrtcAddNameExpression(cProgram(p), cExpr))
}

func (rtc) Compile(p nvrtc.ProgramHandle, options []string) nvrtc.Status {
	var optionsPtr **C.char
	if len(options) > 0 {
		cOptions := make([]*C.char, len(options))
		for ii, option := range options {
			cOptions[ii] = C.CString(option)
			defer C.free(unsafe.Pointer(cOptions[ii]))
		}
		optionsPtr = &cOptions[0]
	}
	return nvrtc.Status(C.nvrtcCompileProgram(cProgram(p), C.int(len(options)), optionsPtr))
}

func (rtc) LogSize(p nvrtc.ProgramHandle) (uint64, nvrtc.Status) {
	var size C.size_t
	status := nvrtc.Status(C.nvrtcGetProgramLogSize(cProgram(p), &size))
	return uint64(size), status
}

func (rtc) Log(p nvrtc.ProgramHandle) ([]byte, nvrtc.Status) {
	var size C.size_t
	if status := nvrtc.Status(C.nvrtcGetProgramLogSize(cProgram(p), &size)); status != nvrtc.Success {
		return nil, status
	}
	buf := make([]byte, size)
	status := nvrtc.Status(C.nvrtcGetProgramLog(cProgram(p), (*C.char)(unsafe.Pointer(&buf[0]))))
	return trimNul(buf), status
}

func (rtc) PTXSize(p nvrtc.ProgramHandle) (uint64, nvrtc.Status) {
	var size C.size_t
	status := nvrtc.Status(C.nvrtcGetPTXSize(cProgram(p), &size))
	return uint64(size), status
}

func (rtc) PTX(p nvrtc.ProgramHandle) ([]byte, nvrtc.Status) {
	var size C.size_t
	if status := nvrtc.Status(C.nvrtcGetPTXSize(cProgram(p), &size)); status != nvrtc.Success {
		return nil, status
	}
	buf := make([]byte, size)
	status := nvrtc.Status(C.nvrtcGetPTX(cProgram(p), (*C.char)(unsafe.Pointer(&buf[0]))))
	return trimNul(buf), status
}

func (rtc) CUBINSize(p nvrtc.ProgramHandle) (uint64, nvrtc.Status) {
	var size C.size_t
	status := nvrtc.Status(C.nvrtcGetCUBINSize(cProgram(p), &size))
	return uint64(size), status
}

func (rtc) CUBIN(p nvrtc.ProgramHandle) ([]byte, nvrtc.Status) {
	var size C.size_t
	if status := nvrtc.Status(C.nvrtcGetCUBINSize(cProgram(p), &size)); status != nvrtc.Success {
		return nil, status
	}
	if size == 0 {
		return nil, nvrtc.Success
	}
	buf := make([]byte, size)
	status := nvrtc.Status(C.nvrtcGetCUBIN(cProgram(p), (*C.char)(unsafe.Pointer(&buf[0]))))
	return buf, status
}

func (rtc) NVVMSize(p nvrtc.ProgramHandle) (uint64, nvrtc.Status) {
	var size C.size_t
	status := nvrtc.Status(C.nvrtcGetNVVMSize(cProgram(p), &size))
	return uint64(size), status
}

func (rtc) NVVM(p nvrtc.ProgramHandle) ([]byte, nvrtc.Status) {
	var size C.size_t
	if status := nvrtc.Status(C.nvrtcGetNVVMSize(cProgram(p), &size)); status != nvrtc.Success {
		return nil, status
	}
	buf := make([]byte, size)
	status := nvrtc.Status(C.nvrtcGetNVVM(cProgram(p), (*C.char)(unsafe.Pointer(&buf[0]))))
	return buf, status
}

func (rtc) LoweredName(p nvrtc.ProgramHandle, nameExpression string) (string, nvrtc.Status) {
	cExpr := C.CString(nameExpression)
	defer C.free(unsafe.Pointer(cExpr))
	var lowered *C.char
	status := nvrtc.Status(C.nvrtcGetLoweredName(cProgram(p), cExpr, &lowered))
	if status != nvrtc.Success {
		return "", status
	}
	// The native string is owned by the program, so copy it out.
	return C.GoString(lowered), status
}

func (rtc) DestroyProgram(p nvrtc.ProgramHandle) nvrtc.Status {
	program := cProgram(p)
	return nvrtc.Status(C.nvrtcDestroyProgram(&program))
}

func cProgram(h nvrtc.ProgramHandle) C.nvrtcProgram {
	return C.nvrtcProgram(unsafe.Pointer(uintptr(h)))
}

// Text artifacts come back NUL-terminated; the terminator is not part of the
// content.
func trimNul(buf []byte) []byte {
	if len(buf) > 0 && buf[len(buf)-1] == 0 {
		return buf[:len(buf)-1]
	}
	return buf
}
