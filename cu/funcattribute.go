package cu

// FuncAttribute defined on a separate file, so it will work with enumer.

import "strconv"

// FuncAttribute names a numeric property of a compiled device function.
// Values match the driver's CUfunction_attribute.
type FuncAttribute int32

//go:generate go tool enumer -type=FuncAttribute funcattribute.go

const (
	FuncAttributeMaxThreadsPerBlock            FuncAttribute = 0
	FuncAttributeSharedSizeBytes               FuncAttribute = 1
	FuncAttributeConstSizeBytes                FuncAttribute = 2
	FuncAttributeLocalSizeBytes                FuncAttribute = 3
	FuncAttributeNumRegs                       FuncAttribute = 4
	FuncAttributePTXVersion                    FuncAttribute = 5
	FuncAttributeBinaryVersion                 FuncAttribute = 6
	FuncAttributeCacheModeCA                   FuncAttribute = 7
	FuncAttributeMaxDynamicSharedSizeBytes     FuncAttribute = 8
	FuncAttributePreferredSharedMemoryCarveout FuncAttribute = 9
)

// describe identifies the attribute in error messages: by name when known,
// by numeric code for values this layer has no name for.
func (a FuncAttribute) describe() string {
	if a.IsAFuncAttribute() {
		return a.String()
	}
	return "#" + strconv.Itoa(int(a))
}
