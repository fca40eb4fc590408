//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// detectLevel reports the widest vector level the CPU attests.
// AVX-512 requires both the foundation and byte/word instruction sets
// since the kernels compare at byte granularity.
func detectLevel() Level {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		return LevelAVX512
	case cpu.X86.HasAVX2:
		return LevelAVX2
	case cpu.X86.HasSSE42:
		return LevelSSE42
	}
	return LevelScalar
}
