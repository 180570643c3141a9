package nvrtc

// An in-memory API implementation used by all tests in this package. It
// models the compiler as a state machine per program: created, compiled
// (successfully or not), destroyed. Compilation "succeeds" unless the test
// scripts a failure, producing deterministic artifacts derived from the
// program name.
//
// The tests are single-goroutine, so no locking.

import (
	"strings"

	"github.com/gomlx/gocuda/cu"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type fakeProgram struct {
	name, source string
	headers      map[string]string
	nameExprs    []string

	compiled  bool
	compileOK bool
	options   []string
	log       []byte
	ptx       []byte
	cubin     []byte
	nvvm      []byte
	lowered   map[string]string
	destroyed bool
}

type fakeAPI struct {
	version  cu.Version
	programs map[ProgramHandle]*fakeProgram
	next     ProgramHandle

	// failCompileWithLog, when non-empty, makes the next Compile fail and
	// leave this log behind.
	failCompileWithLog string
}

func newFakeAPI(version cu.Version) *fakeAPI {
	return &fakeAPI{
		version:  version,
		programs: map[ProgramHandle]*fakeProgram{},
		next:     0x7000,
	}
}

// CheckLeaks reports every program the proxies failed to destroy.
func (fa *fakeAPI) CheckLeaks() error {
	var err error
	for handle, fp := range fa.programs {
		if !fp.destroyed {
			err = multierr.Append(err, errors.Errorf("program %#x (%s) was never destroyed",
				uintptr(handle), fp.name))
		}
	}
	return err
}

func (fa *fakeAPI) Version() (cu.Version, Status) {
	return fa.version, Success
}

func (fa *fakeAPI) CreateProgram(name, source string, headerNames, headerSources []string) (ProgramHandle, Status) {
	if source == "" {
		return 0, ErrorProgramCreationFailure
	}
	fp := &fakeProgram{
		name:    name,
		source:  source,
		headers: map[string]string{},
		lowered: map[string]string{},
	}
	for ii := range headerNames {
		fp.headers[headerNames[ii]] = headerSources[ii]
	}
	handle := fa.next
	fa.next++
	fa.programs[handle] = fp
	return handle, Success
}

func (fa *fakeAPI) lookup(p ProgramHandle) (*fakeProgram, Status) {
	fp, found := fa.programs[p]
	if !found || fp.destroyed {
		return nil, ErrorInvalidProgram
	}
	return fp, Success
}

func (fa *fakeAPI) AddNameExpression(p ProgramHandle, nameExpression string) Status {
	fp, status := fa.lookup(p)
	if status != Success {
		return status
	}
	if fp.compiled {
		return ErrorNoNameExpressionsAfterCompilation
	}
	fp.nameExprs = append(fp.nameExprs, nameExpression)
	return Success
}

func (fa *fakeAPI) Compile(p ProgramHandle, options []string) Status {
	fp, status := fa.lookup(p)
	if status != Success {
		return status
	}
	fp.compiled = true
	fp.options = options
	if fa.failCompileWithLog != "" {
		fp.compileOK = false
		fp.log = []byte(fa.failCompileWithLog)
		fa.failCompileWithLog = ""
		return ErrorCompilation
	}
	fp.compileOK = true
	fp.log = []byte("compiled " + fp.name + " without complaints")
	fp.ptx = []byte("// fake ptx for " + fp.name)
	fp.nvvm = []byte("; fake nvvm for " + fp.name)
	if !optionsTargetVirtualOnly(options) {
		fp.cubin = []byte("fake cubin for " + fp.name)
	}
	for _, expr := range fp.nameExprs {
		fp.lowered[expr] = "_Z" + expr
	}
	return Success
}

func optionsTargetVirtualOnly(options []string) bool {
	for _, option := range options {
		if strings.Contains(option, "=compute_") {
			return true
		}
	}
	return false
}

// artifact gates an accessor pair on compilation having happened.
func (fp *fakeProgram) artifact(data []byte) ([]byte, uint64, Status) {
	if !fp.compiled || !fp.compileOK {
		return nil, 0, ErrorInvalidProgram
	}
	return data, uint64(len(data)), Success
}

func (fa *fakeAPI) LogSize(p ProgramHandle) (uint64, Status) {
	fp, status := fa.lookup(p)
	if status != Success {
		return 0, status
	}
	if !fp.compiled {
		return 0, ErrorInvalidProgram
	}
	return uint64(len(fp.log)), Success
}

func (fa *fakeAPI) Log(p ProgramHandle) ([]byte, Status) {
	fp, status := fa.lookup(p)
	if status != Success {
		return nil, status
	}
	if !fp.compiled {
		return nil, ErrorInvalidProgram
	}
	return fp.log, Success
}

func (fa *fakeAPI) PTXSize(p ProgramHandle) (uint64, Status) {
	fp, status := fa.lookup(p)
	if status != Success {
		return 0, status
	}
	_, size, status := fp.artifact(fp.ptx)
	return size, status
}

func (fa *fakeAPI) PTX(p ProgramHandle) ([]byte, Status) {
	fp, status := fa.lookup(p)
	if status != Success {
		return nil, status
	}
	data, _, status := fp.artifact(fp.ptx)
	return data, status
}

func (fa *fakeAPI) CUBINSize(p ProgramHandle) (uint64, Status) {
	fp, status := fa.lookup(p)
	if status != Success {
		return 0, status
	}
	_, size, status := fp.artifact(fp.cubin)
	return size, status
}

func (fa *fakeAPI) CUBIN(p ProgramHandle) ([]byte, Status) {
	fp, status := fa.lookup(p)
	if status != Success {
		return nil, status
	}
	data, _, status := fp.artifact(fp.cubin)
	return data, status
}

func (fa *fakeAPI) NVVMSize(p ProgramHandle) (uint64, Status) {
	fp, status := fa.lookup(p)
	if status != Success {
		return 0, status
	}
	_, size, status := fp.artifact(fp.nvvm)
	return size, status
}

func (fa *fakeAPI) NVVM(p ProgramHandle) ([]byte, Status) {
	fp, status := fa.lookup(p)
	if status != Success {
		return nil, status
	}
	data, _, status := fp.artifact(fp.nvvm)
	return data, status
}

func (fa *fakeAPI) LoweredName(p ProgramHandle, nameExpression string) (string, Status) {
	fp, status := fa.lookup(p)
	if status != Success {
		return "", status
	}
	if !fp.compiled {
		return "", ErrorNoLoweredNamesBeforeCompilation
	}
	mangled, found := fp.lowered[nameExpression]
	if !found {
		return "", ErrorNameExpressionNotValid
	}
	return mangled, Success
}

func (fa *fakeAPI) DestroyProgram(p ProgramHandle) Status {
	fp, status := fa.lookup(p)
	if status != Success {
		return status
	}
	fp.destroyed = true
	return Success
}
