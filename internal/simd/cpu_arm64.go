//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func detectLevel() Level {
	// Advanced SIMD is mandatory on AArch64, but trust the probe on
	// hosted environments that do not report it.
	if cpu.ARM64.HasASIMD {
		return LevelNEON
	}
	return LevelScalar
}
