package nvrtc

import (
	"fmt"
	"sort"

	"github.com/gomlx/gocuda/cu"
)

// CompilationOptions is a structured view of the most common compiler
// options. Marshal converts it into the flat option list the native compiler
// takes; anything not covered goes verbatim into Extra.
type CompilationOptions struct {
	// Target selects the compute capability to generate code for. The zero
	// value leaves the architecture choice to the compiler default.
	Target cu.ComputeCapability

	// VirtualTargetOnly generates for the virtual architecture (compute_XY)
	// instead of the real one (sm_XY). The resulting program carries PTX only
	// and has no binary image.
	VirtualTargetOnly bool

	// Std selects the C++ language dialect, e.g. "c++17". Empty for the
	// compiler default.
	Std string

	// Debug generates debug information for device code.
	Debug bool

	// GenerateLineInfo embeds source line information.
	GenerateLineInfo bool

	// UseFastMath enables the fast (less precise) math mode.
	UseFastMath bool

	// RelocatableDeviceCode generates relocatable device code, required for
	// separate compilation and linking.
	RelocatableDeviceCode bool

	// MaxRegisters caps the registers per thread; 0 means no cap.
	MaxRegisters int

	// Defines are preprocessor macros; an empty value defines the macro
	// without a value. Marshaled in sorted key order so the option list is
	// deterministic.
	Defines map[string]string

	// IncludePaths are extra directories searched for headers.
	IncludePaths []string

	// Extra options are appended verbatim at the end.
	Extra []string
}

// Marshal flattens the options into the native option-list form.
func (o *CompilationOptions) Marshal() []string {
	var options []string
	if o.Target != (cu.ComputeCapability{}) {
		prefix := "sm_"
		if o.VirtualTargetOnly {
			prefix = "compute_"
		}
		options = append(options,
			fmt.Sprintf("--gpu-architecture=%s%d%d", prefix, o.Target.Major, o.Target.Minor))
	}
	if o.Std != "" {
		options = append(options, "--std="+o.Std)
	}
	if o.Debug {
		options = append(options, "--device-debug")
	}
	if o.GenerateLineInfo {
		options = append(options, "--generate-line-info")
	}
	if o.UseFastMath {
		options = append(options, "--use_fast_math")
	}
	if o.RelocatableDeviceCode {
		options = append(options, "--relocatable-device-code=true")
	}
	if o.MaxRegisters != 0 {
		options = append(options, fmt.Sprintf("--maxrregcount=%d", o.MaxRegisters))
	}
	if len(o.Defines) > 0 {
		keys := make([]string, 0, len(o.Defines))
		for key := range o.Defines {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if value := o.Defines[key]; value != "" {
				options = append(options, "--define-macro="+key+"="+value)
			} else {
				options = append(options, "--define-macro="+key)
			}
		}
	}
	for _, path := range o.IncludePaths {
		options = append(options, "--include-path="+path)
	}
	options = append(options, o.Extra...)
	return options
}
