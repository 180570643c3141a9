package nvrtc

import (
	"strings"

	"github.com/gomlx/gocuda/cu"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Header is one named header source made available to the compiler.
type Header struct {
	Name, Source string
}

// Program wraps a handle to a runtime-compiled (or not-yet-compiled) device
// program.
//
// A Program is not copyable -- duplicating one would require cloning
// compiler-internal state, which the underlying library does not support --
// so always pass the pointer around. The proxy created by CreateProgram owns
// its handle and must be released with Destroy.
type Program struct {
	api    API
	handle ProgramHandle
	name   string
	owning bool

	// caps gates the artifact accessors on the library version. Queried once
	// at construction.
	caps cu.Capabilities

	// virtualTargetOnly records whether the last compilation targeted a
	// virtual architecture only, in which case no binary image can exist.
	virtualTargetOnly bool
}

// ErrNoCUBIN reports that a program has no binary image because it was
// compiled for a virtual architecture only. This is the documented "artifact
// absent for this compilation mode" signal, not a failure of the compiler.
var ErrNoCUBIN = errors.New("no binary image: the program was compiled for a virtual architecture only")

// CreateProgram registers a new program with the runtime compiler from its
// name, source text and optional headers, and returns an owning proxy for it.
func CreateProgram(api API, name, source string, headers ...Header) (*Program, error) {
	headerNames := make([]string, len(headers))
	headerSources := make([]string, len(headers))
	for ii, header := range headers {
		headerNames[ii] = header.Name
		headerSources[ii] = header.Source
	}
	handle, status := api.CreateProgram(name, source, headerNames, headerSources)
	if err := statusToError(status, "failed creating a program named "+name); err != nil {
		return nil, err
	}
	p := wrapProgram(api, handle, name, true)

	// Not all initialization is fatal to the construction of the program:
	// without a library version we just report every gated artifact as
	// unavailable.
	version, status := api.Version()
	if status != Success {
		klog.Errorf("Failed to retrieve the runtime-compilation library version for %s: %v",
			p.identify(), status)
	} else {
		p.caps = cu.CapabilitiesForVersion(version)
	}
	return p, nil
}

// wrapProgram adopts an existing program handle; the internal path used by
// CreateProgram (owning) and by collaborators handing over foreign handles
// (non-owning).
func wrapProgram(api API, handle ProgramHandle, name string, owning bool) *Program {
	return &Program{api: api, handle: handle, name: name, owning: owning}
}

// Name returns the name the program was registered under.
func (p *Program) Name() string { return p.name }

// Handle returns the raw program handle.
func (p *Program) Handle() ProgramHandle { return p.handle }

// IsOwning reports whether Destroy will release the underlying program.
func (p *Program) IsOwning() bool { return p.owning }

// RegisterNameForLookup declares a kernel or variable name expression (e.g.
// "my_kernel", "ns::f<int>") whose mangled form should be retrievable with
// GetManglingOf after compilation. Must be called before Compile; the
// underlying library rejects later registrations.
func (p *Program) RegisterNameForLookup(nameExpression string) error {
	status := p.api.AddNameExpression(p.handle, nameExpression)
	return statusToError(status,
		"failed registering name expression "+nameExpression+" with "+p.identify())
}

// Compile triggers compilation with an explicit option list (empty for the
// toolchain defaults).
//
// A compilation error is returned as a failure, but the program still
// transitions to a state where CompilationLog is retrievable -- check the log
// rather than assuming no artifacts exist.
func (p *Program) Compile(options ...string) error {
	p.virtualTargetOnly = virtualTargetOnly(options)
	status := p.api.Compile(p.handle, options)
	return statusToError(status, "failed compiling "+p.identify())
}

// CompileWith compiles with a structured options object, marshaled into the
// native option list.
func (p *Program) CompileWith(options *CompilationOptions) error {
	return p.Compile(options.Marshal()...)
}

// CompileFor compiles targeting a specific compute capability.
func (p *Program) CompileFor(target cu.ComputeCapability) error {
	return p.CompileWith(&CompilationOptions{Target: target})
}

// CompileForContext compiles targeting the compute capability of the given
// context's device.
func (p *Program) CompileForContext(ctx *cu.Context) error {
	target, err := ctx.ComputeCapability()
	if err != nil {
		return err
	}
	return p.CompileFor(target)
}

// CompilationLog returns the raw log of the most recent compile attempt. It
// fails if the program was never compiled.
func (p *Program) CompilationLog() ([]byte, error) {
	if _, status := p.api.LogSize(p.handle); status != Success {
		return nil, statusToError(status, "failed obtaining the compilation log size of "+p.identify())
	}
	log, status := p.api.Log(p.handle)
	if err := statusToError(status, "failed obtaining the compilation log of "+p.identify()); err != nil {
		return nil, err
	}
	return log, nil
}

// PTX returns the assembly-level (PTX) result of the last compilation. It
// fails if the program was never compiled successfully.
func (p *Program) PTX() ([]byte, error) {
	size, status := p.api.PTXSize(p.handle)
	if err := statusToError(status, "failed obtaining the PTX size of "+p.identify()); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, errors.Errorf("internal inconsistency: an empty PTX is reported for %s", p.identify())
	}
	ptx, status := p.api.PTX(p.handle)
	if err := statusToError(status, "failed obtaining the PTX of "+p.identify()); err != nil {
		return nil, err
	}
	return ptx, nil
}

// HasPTX reports whether a PTX artifact is available. It fails if the program
// was never compiled.
func (p *Program) HasPTX() (bool, error) {
	size, status := p.api.PTXSize(p.handle)
	if err := statusToError(status, "failed obtaining the PTX size of "+p.identify()); err != nil {
		return false, err
	}
	return size > 0, nil
}

// CUBIN returns the binary-image result of the last compilation.
//
// When the program was compiled for a virtual architecture only, no binary
// image exists and the call fails with ErrNoCUBIN -- an absence signal, not a
// compiler failure. Any other zero-size report is an internal inconsistency.
// Binary-image extraction requires toolkit 11.1.
func (p *Program) CUBIN() ([]byte, error) {
	if !p.caps.CUBINExtraction {
		return nil, errors.Wrap(cu.ErrorNotYetImplemented,
			"binary-image extraction is not available on this toolkit version")
	}
	size, status := p.api.CUBINSize(p.handle)
	if err := statusToError(status, "failed obtaining the CUBIN size of "+p.identify()); err != nil {
		return nil, err
	}
	if size == 0 {
		if p.virtualTargetOnly {
			return nil, errors.Wrapf(ErrNoCUBIN, "%s", p.identify())
		}
		return nil, errors.Errorf("internal inconsistency: an empty CUBIN is reported for %s", p.identify())
	}
	cubin, status := p.api.CUBIN(p.handle)
	if err := statusToError(status, "failed obtaining the CUBIN of "+p.identify()); err != nil {
		return nil, err
	}
	return cubin, nil
}

// HasCUBIN reports whether a binary-image artifact is available. It fails if
// the program was never compiled. A false result with a nil error also covers
// toolkits too old for binary-image extraction and virtual-architecture-only
// compilations.
func (p *Program) HasCUBIN() (bool, error) {
	if !p.caps.CUBINExtraction {
		return false, nil
	}
	size, status := p.api.CUBINSize(p.handle)
	if err := statusToError(status, "failed obtaining the CUBIN size of "+p.identify()); err != nil {
		return false, err
	}
	return size > 0, nil
}

// NVVM returns the intermediate-representation result of the last
// compilation. It requires toolkit 11.4 and fails if the program was never
// compiled.
func (p *Program) NVVM() ([]byte, error) {
	if !p.caps.NVVMExtraction {
		return nil, errors.Wrap(cu.ErrorNotYetImplemented,
			"intermediate-representation extraction is not available on this toolkit version")
	}
	size, status := p.api.NVVMSize(p.handle)
	if err := statusToError(status, "failed obtaining the NVVM size of "+p.identify()); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, errors.Errorf("internal inconsistency: an empty NVVM is reported for %s", p.identify())
	}
	nvvm, status := p.api.NVVM(p.handle)
	if err := statusToError(status, "failed obtaining the NVVM of "+p.identify()); err != nil {
		return nil, err
	}
	return nvvm, nil
}

// HasNVVM reports whether an intermediate-representation artifact is
// available. It fails if the program was never compiled.
func (p *Program) HasNVVM() (bool, error) {
	if !p.caps.NVVMExtraction {
		return false, nil
	}
	size, status := p.api.NVVMSize(p.handle)
	if err := statusToError(status, "failed obtaining the NVVM size of "+p.identify()); err != nil {
		return false, err
	}
	return size > 0, nil
}

// GetManglingOf returns the compiled (lowered/mangled) form of a name
// expression previously registered with RegisterNameForLookup. Only valid
// after a successful compilation.
func (p *Program) GetManglingOf(nameExpression string) (string, error) {
	mangled, status := p.api.LoweredName(p.handle, nameExpression)
	if err := statusToError(status,
		"failed obtaining the mangled form of "+nameExpression+" in "+p.identify()); err != nil {
		return "", err
	}
	return mangled, nil
}

// Destroy releases the underlying program iff this proxy owns it. Unlike
// event teardown, a failure here is propagated: failing to tear down
// compiler state indicates a real bug. Destroy is idempotent.
func (p *Program) Destroy() error {
	if p == nil || p.handle == 0 {
		return nil
	}
	var err error
	if p.owning {
		status := p.api.DestroyProgram(p.handle)
		err = statusToError(status, "failed destroying "+p.identify())
	}
	if err == nil {
		p.handle = 0
		p.owning = false
	}
	return err
}

// String implements fmt.Stringer.
func (p *Program) String() string { return p.identify() }

func (p *Program) identify() string {
	return identifyProgram(p.handle, p.name)
}

// virtualTargetOnly recognizes option lists targeting a virtual architecture
// only (compute_XY), for which no binary image will exist.
func virtualTargetOnly(options []string) bool {
	for _, option := range options {
		for _, prefix := range []string{"--gpu-architecture=", "-arch="} {
			if target, found := strings.CutPrefix(option, prefix); found {
				return strings.HasPrefix(target, "compute_")
			}
		}
	}
	return false
}
