package cu

// The occupancy calculator: launch-geometry recommendations derived from the
// driver's occupancy model. All entry points are gated on
// Capabilities.OccupancySearch -- on older toolkits they fail with
// ErrorNotYetImplemented, a condition distinct from operational failures.

import "github.com/pkg/errors"

// GridParams describes a one-dimensional launch geometry: the smallest grid
// (in blocks) that keeps the device busy at the largest block size the
// kernel's resource requirements allow.
type GridParams struct {
	// MinBlocks is the minimum number of blocks necessary for keeping the
	// device "busy" at BlockSize threads per block.
	MinBlocks int

	// BlockSize is the maximum achievable block size, in threads.
	BlockSize int
}

// MinGridParamsForMaxOccupancy searches block sizes for the one maximizing
// occupancy, assuming the kernel needs a fixed amount of dynamic shared
// memory per block regardless of block size.
//
// A blockSizeLimit of 0 means no upper bound on the block size.
// disableCachingOverride makes the search report zero occupancy on platforms
// where it would otherwise pretend caching is disabled; see the driver
// documentation of CU_OCCUPANCY_DISABLE_CACHING_OVERRIDE.
func (k Kernel) MinGridParamsForMaxOccupancy(
	dynSharedMemSize uint64, blockSizeLimit int, disableCachingOverride bool) (GridParams, error) {
	return k.minGridParams(nil, dynSharedMemSize, blockSizeLimit, disableCachingOverride)
}

// MinGridParamsForMaxOccupancyWithDeterminer is the variant for kernels whose
// dynamic shared-memory need depends on the block size (e.g.
// proportional-to-block-size buffers): determiner is consulted for each block
// size the search tries. It must be a pure function -- see
// BlockToDynSMemFunc for the no-captured-state restriction.
func (k Kernel) MinGridParamsForMaxOccupancyWithDeterminer(
	determiner BlockToDynSMemFunc, blockSizeLimit int, disableCachingOverride bool) (GridParams, error) {
	if determiner == nil {
		return GridParams{}, errors.New("a nil shared-memory determiner was given; " +
			"use MinGridParamsForMaxOccupancy for a fixed shared-memory size")
	}
	return k.minGridParams(determiner, 0, blockSizeLimit, disableCachingOverride)
}

func (k Kernel) minGridParams(
	determiner BlockToDynSMemFunc, fixedDynSMem uint64,
	blockSizeLimit int, disableCachingOverride bool) (GridParams, error) {
	caps, err := DriverCapabilities(k.drv)
	if err != nil {
		return GridParams{}, err
	}
	if !caps.OccupancySearch {
		return GridParams{}, statusToError(ErrorNotYetImplemented,
			"the occupancy-maximizing block size search is not available on this toolkit version")
	}
	var params GridParams
	err = inContext(k.drv, k.ctx, func() error {
		var status Status
		params.MinBlocks, params.BlockSize, status = k.drv.OccupancyMaxPotentialBlockSize(
			k.handle, determiner, fixedDynSMem, blockSizeLimit, disableCachingOverride)
		return statusToError(status,
			"failed obtaining parameters for a minimum-size maximum-occupancy grid for "+k.identify())
	})
	return params, err
}

// MaxDynamicSharedMemoryPerBlock returns how much dynamic shared memory each
// block of the kernel may use when blocksOnMultiprocessor blocks of blockSize
// threads run on one multiprocessor.
func MaxDynamicSharedMemoryPerBlock(kernel Kernel, blocksOnMultiprocessor, blockSize int) (uint64, error) {
	var available uint64
	err := inContext(kernel.drv, kernel.ctx, func() error {
		var status Status
		available, status = kernel.drv.OccupancyAvailableDynamicSMemPerBlock(
			kernel.handle, blocksOnMultiprocessor, blockSize)
		return statusToError(status,
			"failed determining the available dynamic shared memory per block for "+kernel.identify())
	})
	return available, err
}

// MaxBlocksPerMultiprocessor returns the number of blocks of blockSize
// threads, each using dynSharedMemPerBlock bytes of dynamic shared memory,
// that can be resident on one multiprocessor at once.
func MaxBlocksPerMultiprocessor(
	kernel Kernel, blockSize int, dynSharedMemPerBlock uint64, disableCachingOverride bool) (int, error) {
	var blocks int
	err := inContext(kernel.drv, kernel.ctx, func() error {
		var status Status
		blocks, status = kernel.drv.OccupancyMaxActiveBlocksPerMultiprocessor(
			kernel.handle, blockSize, dynSharedMemPerBlock, disableCachingOverride)
		return statusToError(status,
			"failed determining the maximum resident blocks per multiprocessor for "+kernel.identify())
	})
	return blocks, err
}
